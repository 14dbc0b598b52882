package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy
var (
	ErrInputUnavailable   = errors.New("input unavailable")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InputError represents a failure to obtain a note from an input source
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s input: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func (e *InputError) Is(target error) bool {
	return target == ErrInputUnavailable
}

// StorageError represents a failure to persist a note
type StorageError struct {
	Backend string
	Path    string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s storage: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("%s storage (%s): %v", e.Backend, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}
