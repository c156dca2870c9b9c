// Package apperr holds the error taxonomy shared by the ledger, the directory and the
// report engine. Handlers map these to HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// ValidationError rejects input before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return e.Field + ": " + e.Reason
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func Invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// StorageError wraps a failed database round trip. The enclosing transaction has been
// rolled back when this is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err unless it already belongs to the taxonomy.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	var se *StorageError

	switch {
	case errors.Is(err, ErrNotFound), errors.As(err, &ve), errors.As(err, &se):
		return err
	}

	return &StorageError{Op: op, Err: err}
}

// NotificationError is a soft failure of the receipt channel. It is recorded on the sale
// and reported to the caller, never propagated as a fault of the sale itself.
type NotificationError struct {
	StatusCode int
	Err        error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return "notification failed: " + e.Err.Error()
	}

	return fmt.Sprintf("notification failed: HTTP %d", e.StatusCode)
}

func (e *NotificationError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
