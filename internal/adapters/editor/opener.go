package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"notewriter/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	editor string
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an opener for the given editor program (name or path)
func NewOpener(editor string) *Opener {
	return &Opener{editor: editor}
}

// OpenFile opens a file in the editor and blocks until the editor exits
func (o *Opener) OpenFile(ctx context.Context, path string) error {
	cmd, err := o.command(ctx, path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// command builds the editor process attached to the terminal
func (o *Opener) command(ctx context.Context, path string) (*exec.Cmd, error) {
	if o.editor == "" {
		return nil, fmt.Errorf("no editor configured: set $EDITOR environment variable")
	}

	cmd := exec.CommandContext(ctx, o.editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}
