package search

import (
	"errors"
	"fmt"
)

// ErrRootUnreadable is returned when the root directory cannot be listed
var ErrRootUnreadable = errors.New("root directory unreadable")

// RootError represents a fatal traversal failure on the root directory
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("cannot read root directory '%s': %v", e.Path, e.Err)
}

func (e *RootError) Is(target error) bool {
	return target == ErrRootUnreadable
}

func (e *RootError) Unwrap() error {
	return e.Err
}
