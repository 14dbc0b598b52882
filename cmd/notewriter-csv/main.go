package main

import (
	"io"
	"log/slog"
	"os"

	"notewriter/internal/adapters/console"
	"notewriter/internal/adapters/csvlog"
	"notewriter/internal/cli"
	"notewriter/internal/config"
	"notewriter/internal/ports"
)

func main() {
	cmd := cli.NewRootCmd("notewriter-csv", "Type a one-line note and append it to csv_notes/notes",
		func(out io.Writer, logger *slog.Logger) (ports.NoteInput, ports.NoteStorage, error) {
			return console.NewInput(os.Stdin, out), csvlog.NewStorage(config.CSVRoot, out, logger), nil
		})

	cli.Execute(cmd)
}
