package common

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup by id or unique value that matched no row.
var ErrNotFound = errors.New("not found")

// ValidationError reports a required field missing from a request payload.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%q field is required", e.Field)
}

// ConflictError reports an attempted write that would violate a
// uniqueness invariant. Detail is safe to return to the client.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}
