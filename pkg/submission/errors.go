package submission

import (
	"errors"
	"fmt"
)

var (
	// ErrRetryable matches any *RetryableError with errors.Is.
	ErrRetryable = errors.New("temporary submission failure")

	// ErrRejected marks a final refusal. Retrying will not help.
	ErrRejected = errors.New("application rejected")

	// ErrUnknownFlow is returned when the application's locale and account
	// type do not resolve to a flow.
	ErrUnknownFlow = errors.New("no flow for application")
)

// RetryableError is a transient failure, e.g. a timeout talking to the backend.
type RetryableError struct {
	Err error
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) *RetryableError {
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string {
	if e.Err == nil {
		return ErrRetryable.Error()
	}
	return fmt.Sprintf("%s: %v", ErrRetryable, e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

func (e *RetryableError) Is(target error) bool {
	return target == ErrRetryable
}

// IsRetryable reports whether err is worth another attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRetryable)
}

// IsRejected reports whether err is a final refusal.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}
