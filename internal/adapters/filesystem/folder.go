package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

const (
	// CounterFile holds the next note id as decimal text
	CounterFile = "current_note_id"

	// CounterTempFile is the transient file used to commit a new counter value
	CounterTempFile = CounterFile + ".temp"

	backendName = "folder"
)

// FolderStorage implements ports.NoteStorage with one folder per day and one
// file per note, named by an id taken from an on-disk counter.
//
// The counter is not locked: two processes writing to the same root at once
// can be handed the same id.
type FolderStorage struct {
	root   string
	out    io.Writer
	logger *slog.Logger
}

var _ ports.NoteStorage = (*FolderStorage)(nil)

// NewFolderStorage creates a folder storage rooted at root. Confirmations are
// printed to out. A nil logger discards output.
func NewFolderStorage(root string, out io.Writer, logger *slog.Logger) *FolderStorage {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FolderStorage{root: root, out: out, logger: logger}
}

// Root returns the storage root
func (s *FolderStorage) Root() string {
	return s.root
}

// DayPath returns the folder holding the notes of the note's day
func (s *FolderStorage) DayPath(note domain.Note) string {
	return filepath.Join(s.root, note.Date())
}

// NotePath returns the file a note with the given id and day is stored in
func (s *FolderStorage) NotePath(note domain.Note, id int) string {
	return filepath.Join(s.DayPath(note), strconv.Itoa(id))
}

// Store writes the note verbatim to <root>/<date>/<id>
func (s *FolderStorage) Store(_ context.Context, note domain.Note) error {
	dayPath := s.DayPath(note)
	if err := os.MkdirAll(dayPath, 0755); err != nil {
		return &domain.StorageError{Backend: backendName, Path: dayPath, Err: fmt.Errorf("failed to create day folder: %w", err)}
	}

	id, err := s.NextID()
	if err != nil {
		return err
	}

	notePath := s.NotePath(note, id)
	if err := os.WriteFile(notePath, []byte(note.Text), 0644); err != nil {
		return &domain.StorageError{Backend: backendName, Path: notePath, Err: fmt.Errorf("failed to write note: %w", err)}
	}
	s.logger.Debug("note written", "path", notePath, "id", id)

	fmt.Fprintf(s.out, "Wrote note with id %d\n", id)
	return nil
}

// NextID returns the id to assign to the next note and advances the counter
// by one. The new value is committed by renaming a fully written temp file
// over the counter file, so an interrupted update leaves the old value intact.
func (s *FolderStorage) NextID() (int, error) {
	counterPath := filepath.Join(s.root, CounterFile)

	current, err := s.CurrentID()
	if err != nil {
		return 0, err
	}

	tempPath := filepath.Join(s.root, CounterTempFile)
	next := []byte(strconv.Itoa(current + 1))
	if err := writeFileAtomic(counterPath, tempPath, next, 0644); err != nil {
		return 0, &domain.StorageError{Backend: backendName, Path: counterPath, Err: err}
	}
	s.logger.Debug("note counter committed", "assigned", current, "next", current+1)

	return current, nil
}

// CurrentID returns the value stored in the counter file, or 0 when there
// is none yet.
func (s *FolderStorage) CurrentID() (int, error) {
	counterPath := filepath.Join(s.root, CounterFile)

	data, err := os.ReadFile(counterPath)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, &domain.StorageError{Backend: backendName, Path: counterPath, Err: fmt.Errorf("failed to read counter: %w", err)}
	}

	id, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, &domain.StorageError{Backend: backendName, Path: counterPath, Err: fmt.Errorf("corrupt counter: %w", err)}
	}
	return id, nil
}
