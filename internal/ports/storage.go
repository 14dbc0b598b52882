package ports

import (
	"context"

	"notewriter/internal/domain"
)

// NoteStorage persists notes. Each backend picks its own representation.
type NoteStorage interface {
	// Store records the note and reports the outcome on the backend's output
	Store(ctx context.Context, note domain.Note) error
}
