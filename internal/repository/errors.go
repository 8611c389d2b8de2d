package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup by date or position that matched nothing.
// Callers may surface it or ignore it; stored data is never touched.
var ErrNotFound = errors.New("repository: not found")

// ValidationError reports a required field that was empty after
// trimming. The operation is aborted with no partial write.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("repository: %s must not be empty", e.Field)
}
