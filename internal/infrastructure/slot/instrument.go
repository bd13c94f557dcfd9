package slot

import (
	"context"
	"errors"

	"github.com/edulearn/marketplace/internal/core/domain"
	"github.com/edulearn/marketplace/internal/core/ports"
	"github.com/edulearn/marketplace/internal/pkg/metrics"
)

type instrumented struct {
	next ports.SessionSlot
}

// Instrument wraps a slot so every operation is counted in
// metrics.SessionSlotOpsTotal.
func Instrument(next ports.SessionSlot) ports.SessionSlot {
	return &instrumented{next: next}
}

func (s *instrumented) Load(ctx context.Context) ([]byte, error) {
	data, err := s.next.Load(ctx)
	observe("load", err)
	return data, err
}

func (s *instrumented) Save(ctx context.Context, data []byte) error {
	err := s.next.Save(ctx, data)
	observe("save", err)
	return err
}

func (s *instrumented) Clear(ctx context.Context) error {
	err := s.next.Clear(ctx)
	observe("clear", err)
	return err
}

func observe(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrSlotEmpty):
		result = "empty"
	case err != nil:
		result = "error"
	}
	metrics.SessionSlotOpsTotal.WithLabelValues(op, result).Inc()
}
