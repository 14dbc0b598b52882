package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

// Prompt is shown before reading the note
const Prompt = "Enter note: "

// Input implements ports.NoteInput by reading one line from a terminal
type Input struct {
	reader *bufio.Reader
	out    io.Writer
}

var _ ports.NoteInput = (*Input)(nil)

// NewInput creates a console input reading from r and prompting on w
func NewInput(r io.Reader, w io.Writer) *Input {
	return &Input{reader: bufio.NewReader(r), out: w}
}

// GetNote prompts and returns the next line without its line terminator
func (in *Input) GetNote(_ context.Context) (string, error) {
	if _, err := fmt.Fprint(in.out, Prompt); err != nil {
		return "", &domain.InputError{Source: "console", Err: fmt.Errorf("failed to write prompt: %w", err)}
	}

	line, err := in.reader.ReadString('\n')
	if err != nil {
		// A last line without a terminator is still a note.
		if !errors.Is(err, io.EOF) || line == "" {
			return "", &domain.InputError{Source: "console", Err: fmt.Errorf("failed to read note: %w", err)}
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
