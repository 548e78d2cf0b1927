package errs

import "fmt"

// IllegalStateError reports an operation that the current state of an aggregate does not permit,
// such as a status transition out of order.
type IllegalStateError struct {
	Subject string
	Cause   error
}

func NewIllegalStateError(subject string) *IllegalStateError {
	return &IllegalStateError{Subject: subject}
}

func NewIllegalStateErrorWithCause(subject string, cause error) *IllegalStateError {
	return &IllegalStateError{
		Subject: subject,
		Cause:   cause,
	}
}

func (e *IllegalStateError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrIllegalState, e.Subject), e.Cause)
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}
