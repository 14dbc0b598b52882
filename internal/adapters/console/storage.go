package console

import (
	"context"
	"fmt"
	"io"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

// Storage implements ports.NoteStorage by echoing notes. Nothing is kept.
type Storage struct {
	out io.Writer
}

var _ ports.NoteStorage = (*Storage)(nil)

// NewStorage creates a console storage printing to out
func NewStorage(out io.Writer) *Storage {
	return &Storage{out: out}
}

// Store prints "<timestamp>: <note>"
func (s *Storage) Store(_ context.Context, note domain.Note) error {
	if _, err := fmt.Fprintf(s.out, "%s: %s\n", note.FormattedTimestamp(), note.Text); err != nil {
		return &domain.StorageError{Backend: "console", Err: err}
	}
	return nil
}
