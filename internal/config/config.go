package config

import "os"

const (
	// EditorEnvVar names the environment variable holding the editor program
	EditorEnvVar = "EDITOR"

	// DefaultEditor is used when EditorEnvVar is unset or empty
	DefaultEditor = "vim"

	// FolderRoot is the root of the folder-per-day storage
	FolderRoot = "notes"

	// CSVRoot is the directory holding the CSV log
	CSVRoot = "csv_notes"

	// SQLitePath is the database file of the SQLite storage
	SQLitePath = "notes.db"
)

// Editor returns the editor program from $EDITOR,
// falling back to DefaultEditor.
func Editor() string {
	if env := os.Getenv(EditorEnvVar); env != "" {
		return env
	}
	return DefaultEditor
}
