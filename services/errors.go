package services

import (
	"errors"
	"fmt"
)

var (
	// ErrBlobNotFound is returned by a BlobStore when no bundle has been
	// persisted yet (first run).
	ErrBlobNotFound = errors.New("blob not found")

	// ErrItemNotFound is returned by DynamoService.GetItem for a missing row.
	ErrItemNotFound = errors.New("item not found")

	// ErrSessionNotFound is returned when an operation references a match ID
	// with no backing chat session.
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrDuplicateMessage is returned when a message carries an ID that is
	// already present in the session.
	ErrDuplicateMessage = errors.New("duplicate message id")

	// ErrEmptyMessage is returned when a non-system message has no text.
	ErrEmptyMessage = errors.New("message text cannot be empty")
)

// PersistenceError reports a failed durable write. The in-memory state has
// already been applied; the caller should retry the save.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: changes may not be saved: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err wraps a failed durable write.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
