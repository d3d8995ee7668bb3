package usecase

import (
	"errors"
	"fmt"
)

// ValidationError carries the first offending field of a submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports a duplicate unique key.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the backing store. Err must never reach a client.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotificationError is only logged.
type NotificationError struct {
	Kind      string
	Recipient string
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification %s to %s was not delivered", e.Kind, e.Recipient)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflictError(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsStorageError(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
