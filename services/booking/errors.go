package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a booking lookup misses.
var ErrNotFound = errors.New("booking not found")

// PersistenceError wraps a store failure that is fatal to the operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
