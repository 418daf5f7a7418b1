package payment

import (
	"context"

	"docportal/models"
)

// Service applies confirmed payments to bookings and brokers payment intents
// with the external processor.
type Service interface {
	// Confirm records the payment and marks the booking paid. Confirming
	// the same transactionId twice is a no-op returning the paid booking.
	Confirm(ctx context.Context, bookingID, transactionID string, amount float64) (*models.Booking, error)
	// CreateIntent obtains a client secret for the given price from the
	// payment processor.
	CreateIntent(ctx context.Context, price float64) (string, error)
}
