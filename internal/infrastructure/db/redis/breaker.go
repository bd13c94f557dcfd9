package redis

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// newBreaker opens after 3 consecutive failures and probes again after
// openTimeout.
func newBreaker(name string, openTimeout time.Duration, log zerolog.Logger) *gobreaker.CircuitBreaker {
	if openTimeout <= 0 {
		openTimeout = 5 * time.Second
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
}
