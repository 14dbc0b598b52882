package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

// Input implements ports.NoteInput by taking the system clipboard's text
type Input struct {
	unsupported bool
	read        func() (string, error)
}

var _ ports.NoteInput = (*Input)(nil)

// NewInput creates a clipboard input
func NewInput() *Input {
	return &Input{unsupported: clipboard.Unsupported, read: clipboard.ReadAll}
}

// GetNote returns the current clipboard text. An unsupported clipboard
// (no xclip/xsel/wl-paste on Linux) fails with ErrInputUnavailable.
func (in *Input) GetNote(_ context.Context) (string, error) {
	if in.unsupported {
		return "", &domain.InputError{Source: "clipboard", Err: fmt.Errorf("no clipboard utility available")}
	}

	text, err := in.read()
	if err != nil {
		return "", &domain.InputError{Source: "clipboard", Err: fmt.Errorf("failed to read clipboard: %w", err)}
	}
	return text, nil
}
