package db

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when the requested document doesn't exist.
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// StorageError wraps a failed write or read so callers can tell store
// failures apart from their own errors.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
