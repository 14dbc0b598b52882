package csvlog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"notewriter/internal/domain"
)

// ReadLog returns the notes stored in the log at path, oldest first, with
// escaped newlines restored. Everything after the first comma of a row is
// taken as the note text. Timestamps are parsed in the local time zone.
func ReadLog(path string) ([]domain.Note, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.StorageError{Backend: backendName, Path: path, Err: err}
	}
	defer f.Close()

	var notes []domain.Note
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if line == 1 {
			if text != Header {
				return nil, fmt.Errorf("%s: unexpected header %q", path, text)
			}
			continue
		}

		stamp, body, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%s:%d: missing separator", path, line)
		}
		at, err := time.ParseInLocation(domain.TimestampLayout, stamp, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		notes = append(notes, domain.NewNote(domain.UnescapeNewlines(body), at))
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.StorageError{Backend: backendName, Path: path, Err: err}
	}

	return notes, nil
}
