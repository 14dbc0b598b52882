package filesystem

import (
	"fmt"
	"os"
)

// writeFileAtomic writes data to tempName, flushes it to disk and then renames
// it over filename. Both paths must be on the same filesystem. A stale
// tempName left by an earlier crash is truncated and reused.
func writeFileAtomic(filename, tempName string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.OpenFile(tempName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempName, filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
