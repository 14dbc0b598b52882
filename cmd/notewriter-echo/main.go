package main

import (
	"io"
	"log/slog"

	"notewriter/internal/adapters/console"
	"notewriter/internal/adapters/editor"
	"notewriter/internal/cli"
	"notewriter/internal/config"
	"notewriter/internal/ports"
)

func main() {
	cmd := cli.NewRootCmd("notewriter-echo", "Write a note in $EDITOR and print it with its timestamp",
		func(out io.Writer, logger *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
			return editor.NewInput(editor.NewOpener(config.Editor()), logger), console.NewStorage(out), nil
		})

	cli.Execute(cmd)
}
