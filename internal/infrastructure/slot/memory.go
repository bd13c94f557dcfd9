package slot

import (
	"context"
	"slices"
	"sync"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// MemorySlot keeps the record in process memory. A session stored here does
// not survive a restart.
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, domain.ErrSlotEmpty
	}
	return slices.Clone(s.data), nil
}

func (s *MemorySlot) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = slices.Clone(data)
	if s.data == nil {
		s.data = []byte{}
	}
	return nil
}

func (s *MemorySlot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
