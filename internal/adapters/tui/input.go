package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

// ErrCancelled is returned when the user leaves the composer without saving
var ErrCancelled = errors.New("note cancelled")

// Input implements ports.NoteInput with a full-screen text area
type Input struct {
	opts []tea.ProgramOption
}

var _ ports.NoteInput = (*Input)(nil)

// NewInput creates a TUI input on the process terminal
func NewInput() *Input {
	return &Input{opts: []tea.ProgramOption{tea.WithAltScreen()}}
}

// NewInputWithIO creates a TUI input bound to the given streams
func NewInputWithIO(in io.Reader, out io.Writer) *Input {
	return &Input{opts: []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}}
}

// GetNote runs the composer until the note is saved or cancelled
func (in *Input) GetNote(ctx context.Context) (string, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, in.opts...)
	p := tea.NewProgram(NewComposerModel(), opts...)

	final, err := p.Run()
	if err != nil {
		return "", &domain.InputError{Source: "tui", Err: fmt.Errorf("composer failed: %w", err)}
	}

	m, ok := final.(*ComposerModel)
	if !ok || !m.Submitted() {
		return "", &domain.InputError{Source: "tui", Err: ErrCancelled}
	}
	return m.Value(), nil
}
