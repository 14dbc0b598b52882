package domain

import (
	"strings"
	"time"
)

const (
	// TimestampLayout renders a note's timestamp for humans (YYYY-MM-DD-HH:MM:SS)
	TimestampLayout = "2006-01-02-15:04:05"

	// DateLayout names the per-day folders (YYYY-MM-DD)
	DateLayout = "2006-01-02"
)

// Note is a single captured note. It is created at write time and never mutated.
type Note struct {
	Text      string
	Timestamp time.Time
}

// NewNote creates a note stamped with the given time
func NewNote(text string, at time.Time) Note {
	return Note{Text: text, Timestamp: at}
}

// FormattedTimestamp returns the timestamp in TimestampLayout
func (n Note) FormattedTimestamp() string {
	return n.Timestamp.Format(TimestampLayout)
}

// Date returns the calendar day of the note in DateLayout
func (n Note) Date() string {
	return n.Timestamp.Format(DateLayout)
}

// EscapeNewlines replaces every newline with the two characters `\n`
// so a note fits on one physical line.
func EscapeNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", `\n`)
}

// UnescapeNewlines reverses EscapeNewlines
func UnescapeNewlines(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}
