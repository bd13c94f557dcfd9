// Package slot provides the process-local implementations of the durable
// session slot.
package slot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edulearn/marketplace/internal/core/domain"
)

// FileSlot stores the session record as a single JSON file.
type FileSlot struct {
	path string
}

// NewFileSlot returns a slot backed by the file at path. The parent directory
// is created on first save.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// DefaultFilePath is ~/.edulearn/session.json, or a path in the working
// directory when the home directory is unknown.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".edulearn", "session.json")
	}
	return filepath.Join(home, ".edulearn", "session.json")
}

// Path returns the backing file path.
func (s *FileSlot) Path() string { return s.path }

func (s *FileSlot) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	return data, nil
}

// Save replaces the file atomically so a crash never leaves a torn record.
func (s *FileSlot) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *FileSlot) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
