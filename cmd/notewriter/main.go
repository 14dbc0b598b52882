package main

import (
	"io"
	"log/slog"

	"notewriter/internal/adapters/editor"
	"notewriter/internal/adapters/filesystem"
	"notewriter/internal/cli"
	"notewriter/internal/config"
	"notewriter/internal/ports"
)

func main() {
	cmd := cli.NewRootCmd("notewriter", "Write a note in $EDITOR and file it under notes/<date>/<id>",
		func(out io.Writer, logger *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
			input := editor.NewInput(editor.NewOpener(config.Editor()), logger)
			storage := filesystem.NewFolderStorage(config.FolderRoot, out, logger)
			return input, storage, nil
		})

	cli.Execute(cmd)
}
