package commands

import (
	"context"
	"fmt"
	"time"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

// WriteNoteResult contains the result of writing a note
type WriteNoteResult struct {
	Note domain.Note
}

// WriteNoteCommand takes one note from an input and hands it to a storage
type WriteNoteCommand struct {
	input   ports.NoteInput
	storage ports.NoteStorage
	now     func() time.Time
}

// NewWriteNoteCommand creates a new WriteNoteCommand
func NewWriteNoteCommand(input ports.NoteInput, storage ports.NoteStorage) *WriteNoteCommand {
	return &WriteNoteCommand{
		input:   input,
		storage: storage,
		now:     time.Now,
	}
}

// WithClock replaces the time source used to stamp notes
func (c *WriteNoteCommand) WithClock(now func() time.Time) *WriteNoteCommand {
	c.now = now
	return c
}

// Execute runs the write note command. The timestamp is taken after the
// input returns, so time spent typing is not part of it.
func (c *WriteNoteCommand) Execute(ctx context.Context) (*WriteNoteResult, error) {
	text, err := c.input.GetNote(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	note := domain.NewNote(text, c.now())
	if err := c.storage.Store(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to store note: %w", err)
	}

	return &WriteNoteResult{Note: note}, nil
}
