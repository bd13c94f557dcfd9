// Package metrics defines and registers all custom Prometheus metrics for the
// EduLearn marketplace. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "edulearn"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts successful session state transitions.
// Label:
//   - operation: "login", "register", "logout", "switch_role"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state transitions, by operation.",
	},
	[]string{"operation"},
)

// SessionSlotOpsTotal counts operations against the durable session slot.
// Labels:
//   - op: "load", "save", "clear"
//   - result: "ok", "empty", or "error"
var SessionSlotOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_slot_ops_total",
		Help:      "Total number of durable session slot operations, by op and result.",
	},
	[]string{"op", "result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CourseQueriesTotal counts catalog browse queries.
// Label:
//   - sort: the effective sort mode (e.g. "popular")
var CourseQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_queries_total",
		Help:      "Total number of course browse queries, by sort mode.",
	},
	[]string{"sort"},
)

// CourseQueryResults observes how many courses a browse query returned.
var CourseQueryResults = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "course_query_results",
		Help:      "Number of courses returned per browse query.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	},
)

// CatalogMutationsTotal counts admin changes to the catalog.
// Label:
//   - op: "create", "update", "delete", "add_lesson"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of admin catalog mutations, by operation.",
	},
	[]string{"op"},
)

// ── Enrollment metrics ────────────────────────────────────────────────────────

// EnrollmentsTotal counts new enrollments.
var EnrollmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of course enrollments.",
	},
)

// LessonsCompletedTotal counts lessons marked complete.
var LessonsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lessons_completed_total",
		Help:      "Total number of lessons marked complete by students.",
	},
)
