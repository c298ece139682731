package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidCreds    = errors.New("invalid credentials")
	ErrNoCopyAvailable = errors.New("no available copy in this lab")
	ErrAlreadyReturned = errors.New("borrowing not found or already returned")
)

// BorrowVeto carries the eligibility function's refusal reason.
type BorrowVeto struct {
	Reason string
}

func (e *BorrowVeto) Error() string {
	return e.Reason
}

type ErrorResponse struct {
	Error string `json:"error"`
}
