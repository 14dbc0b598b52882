package main

import (
	"io"
	"log/slog"

	"notewriter/internal/adapters/clipboard"
	"notewriter/internal/adapters/filesystem"
	"notewriter/internal/cli"
	"notewriter/internal/config"
	"notewriter/internal/ports"
)

func main() {
	cmd := cli.NewRootCmd("notewriter-clip", "File the clipboard text as a note under notes/<date>/<id>",
		func(out io.Writer, logger *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
			return clipboard.NewInput(), filesystem.NewFolderStorage(config.FolderRoot, out, logger), nil
		})

	cli.Execute(cmd)
}
