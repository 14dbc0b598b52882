package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

// Placeholder is written to the scratch file before the editor opens
const Placeholder = "Enter note..."

const source = "editor"

// Input implements ports.NoteInput by letting the user write the note
// in an external editor.
type Input struct {
	opener ports.EditorOpener
	logger *slog.Logger
}

var _ ports.NoteInput = (*Input)(nil)

// NewInput creates an editor input. A nil logger discards output.
func NewInput(opener ports.EditorOpener, logger *slog.Logger) *Input {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Input{opener: opener, logger: logger}
}

// GetNote opens a scratch file holding Placeholder in the editor and returns
// whatever the file contains once the editor exits. The scratch file is
// always removed.
func (in *Input) GetNote(ctx context.Context) (string, error) {
	tf, err := os.CreateTemp("", "note-*.tmp")
	if err != nil {
		return "", inputErr(fmt.Errorf("failed to create scratch file: %w", err))
	}
	path := tf.Name()
	defer os.Remove(path)

	if _, err := tf.WriteString(Placeholder); err != nil {
		tf.Close()
		return "", inputErr(fmt.Errorf("failed to write scratch file: %w", err))
	}
	if err := tf.Close(); err != nil {
		return "", inputErr(fmt.Errorf("failed to close scratch file: %w", err))
	}

	in.logger.Debug("launching editor", "path", path)
	if err := in.opener.OpenFile(ctx, path); err != nil {
		// A non-zero exit still leaves the user's text in the file.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", inputErr(fmt.Errorf("failed to launch editor: %w", err))
		}
		in.logger.Debug("editor exited with non-zero status", "code", exitErr.ExitCode())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", inputErr(fmt.Errorf("failed to read scratch file: %w", err))
	}
	return string(data), nil
}

func inputErr(err error) error {
	return &domain.InputError{Source: source, Err: err}
}
