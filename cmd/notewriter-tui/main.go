package main

import (
	"io"
	"log/slog"

	"notewriter/internal/adapters/sqlite"
	"notewriter/internal/adapters/tui"
	"notewriter/internal/cli"
	"notewriter/internal/config"
	"notewriter/internal/ports"
)

func main() {
	cmd := cli.NewRootCmd("notewriter-tui", "Compose a note in the terminal and store it in notes.db",
		func(out io.Writer, logger *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
			storage, err := sqlite.Open(config.SQLitePath, out, logger)
			if err != nil {
				return nil, nil, err
			}
			return tui.NewInput(), storage, nil
		})

	cli.Execute(cmd)
}
