package paymentRepo

import (
	"context"
	"errors"

	"docportal/models"
)

var (
	// ErrBookingNotFound: the referenced booking does not exist, nothing
	// was written.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrDuplicateTransaction: a payment with the same transactionId was
	// already applied, nothing was written.
	ErrDuplicateTransaction = errors.New("transaction already applied")
	// ErrBookingAlreadyPaid: the booking is already settled by a different
	// transaction, nothing was written.
	ErrBookingAlreadyPaid = errors.New("booking already paid")
)

// PaymentRepository persists payment records and applies their effect to the
// associated booking. Payments are append-only.
type PaymentRepository interface {
	// ApplyPayment inserts the payment record and flips the booking to
	// paid with the transaction reference, as one atomic unit. It returns
	// the booking as updated. A booking already settled by a different
	// transaction yields ErrBookingAlreadyPaid and writes nothing.
	ApplyPayment(ctx context.Context, payment *models.Payment) (*models.Booking, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
}
