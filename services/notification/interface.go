package notification

import (
	"context"

	"docportal/models"
)

// ConfirmationNotifier delivers (or schedules delivery of) the booking
// confirmation message to the patient. Callers treat failures as
// fire-and-forget: they are logged and never fail the booking.
type ConfirmationNotifier interface {
	BookingConfirmed(ctx context.Context, booking models.Booking) error
}
