package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"notewriter/internal/domain"
	"notewriter/internal/ports"
)

const (
	schemaVersion = "1"
	backendName   = "sqlite"
)

// Storage implements ports.NoteStorage using SQLite. Each note is a row keyed
// by a ULID.
type Storage struct {
	db      *sql.DB
	dbPath  string
	out     io.Writer
	logger  *slog.Logger
	entropy *rand.Rand
}

// Ensure Storage implements NoteStorage
var _ ports.NoteStorage = (*Storage)(nil)

// Open opens or creates the database at dbPath. Confirmations are printed to
// out. A nil logger discards output.
func Open(dbPath string, out io.Writer, logger *slog.Logger) (*Storage, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, storageErr(dbPath, fmt.Errorf("failed to create database directory: %w", err))
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, storageErr(dbPath, fmt.Errorf("failed to open database: %w", err))
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			id         TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			note       TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at);
	`)
	if err != nil {
		db.Close()
		return nil, storageErr(dbPath, fmt.Errorf("failed to setup database: %w", err))
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, storageErr(dbPath, fmt.Errorf("failed to update metadata: %w", err))
	}

	return &Storage{
		db:      db,
		dbPath:  dbPath,
		out:     out,
		logger:  logger,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Store inserts the note and prints its id
func (s *Storage) Store(ctx context.Context, note domain.Note) error {
	id := ulid.MustNew(ulid.Timestamp(note.Timestamp), s.entropy).String()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id, created_at, note) VALUES (?, ?, ?)`,
		id, note.FormattedTimestamp(), note.Text,
	)
	if err != nil {
		return storageErr(s.dbPath, fmt.Errorf("failed to insert note: %w", err))
	}
	s.logger.Debug("note inserted", "id", id)

	fmt.Fprintf(s.out, "Wrote note with id %s\n", id)
	return nil
}

// Get returns the note stored under id, or nil when there is none
func (s *Storage) Get(ctx context.Context, id string) (*domain.Note, error) {
	var stamp, text string
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, note FROM notes WHERE id = ?`, id,
	).Scan(&stamp, &text)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(s.dbPath, err)
	}

	at, err := time.ParseInLocation(domain.TimestampLayout, stamp, time.Local)
	if err != nil {
		return nil, storageErr(s.dbPath, fmt.Errorf("bad timestamp for %s: %w", id, err))
	}
	note := domain.NewNote(text, at)
	return &note, nil
}

func storageErr(path string, err error) error {
	return &domain.StorageError{Backend: backendName, Path: path, Err: err}
}
