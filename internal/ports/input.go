package ports

import "context"

// NoteInput produces the raw text of a note from some source
type NoteInput interface {
	// GetNote blocks until the source yields a note
	GetNote(ctx context.Context) (string, error)
}
