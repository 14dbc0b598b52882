// Package csvlog stores notes as rows of a single append-only CSV file.
//
// Rows are written as "<timestamp>,<note>" with newlines in the note escaped
// as `\n`. Commas and quotes are not escaped, so a note containing a comma
// shifts the columns of its row.
package csvlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

const (
	// LogFile is the name of the log inside the storage root
	LogFile = "notes"

	// Header is the first line of every log
	Header = "date,note"

	backendName = "csv"
)

// Storage implements ports.NoteStorage on top of a CSV log
type Storage struct {
	root   string
	out    io.Writer
	logger *slog.Logger
}

var _ ports.NoteStorage = (*Storage)(nil)

// NewStorage creates a CSV storage rooted at root. Confirmations are printed
// to out. A nil logger discards output.
func NewStorage(root string, out io.Writer, logger *slog.Logger) *Storage {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Storage{root: root, out: out, logger: logger}
}

// Path returns the location of the log file
func (s *Storage) Path() string {
	return filepath.Join(s.root, LogFile)
}

// Store appends one row for the note, writing the header first if the log
// does not exist yet.
func (s *Storage) Store(_ context.Context, note domain.Note) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return &domain.StorageError{Backend: backendName, Path: s.root, Err: fmt.Errorf("failed to create storage folder: %w", err)}
	}

	path := s.Path()
	_, err := os.Stat(path)
	writeHeader := errors.Is(err, fs.ErrNotExist)
	if err != nil && !writeHeader {
		return &domain.StorageError{Backend: backendName, Path: path, Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return &domain.StorageError{Backend: backendName, Path: path, Err: fmt.Errorf("failed to open log: %w", err)}
	}

	var row string
	if writeHeader {
		row = Header + "\n"
		s.logger.Debug("creating note log", "path", path)
	}
	row += FormatRow(note)

	if _, err := io.WriteString(f, row); err != nil {
		f.Close()
		return &domain.StorageError{Backend: backendName, Path: path, Err: fmt.Errorf("failed to append note: %w", err)}
	}
	if err := f.Close(); err != nil {
		return &domain.StorageError{Backend: backendName, Path: path, Err: err}
	}

	fmt.Fprintln(s.out, "Note written successfully!")
	return nil
}

// FormatRow renders the log line of a note, terminator included
func FormatRow(note domain.Note) string {
	return note.FormattedTimestamp() + "," + domain.EscapeNewlines(note.Text) + "\n"
}
