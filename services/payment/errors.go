package payment

import "errors"

var (
	// ErrBookingNotFound: no booking exists under the supplied ID.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidRequest: missing identifiers or a non-positive amount.
	ErrInvalidRequest = errors.New("invalid payment request")
	// ErrAlreadyPaid: the booking was already settled by a different
	// transaction; no second payment is recorded.
	ErrAlreadyPaid = errors.New("booking already paid")
)
