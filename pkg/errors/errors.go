package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrConnection ErrorCode = iota + 1000
	ErrStatement
	ErrInput
	ErrInternal
)

// Connection marks a failure to reach the database. Fatal at startup.
func Connection(err error) *AppError {
	return &AppError{
		Code:    ErrConnection,
		Message: "unable to connect to database",
		Err:     err,
	}
}

// Statement wraps an error returned while executing op.
func Statement(op string, err error) *AppError {
	return &AppError{
		Code:    ErrStatement,
		Message: fmt.Sprintf("failed to %s", op),
		Err:     err,
	}
}

func Input(message string, err error) *AppError {
	return &AppError{
		Code:    ErrInput,
		Message: message,
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Message returns the single line shown to the user for err. Database
// errors are reduced to the server's own message.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Message
	}
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch {
	case appErr.Code == ErrInput:
		return appErr.Message
	case appErr.Code == ErrStatement && appErr.Err != nil:
		return appErr.Err.Error()
	}
	return appErr.Error()
}
