package ports

import "context"

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	// OpenFile opens the file in the configured editor and waits for it to exit
	OpenFile(ctx context.Context, path string) error
}
