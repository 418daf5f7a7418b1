package bookingRepo

import (
	"context"
	"errors"

	"docportal/models"
)

// Storage-level conflicts surfaced by Create. Both are backed by unique
// indexes, so they hold even when two admissions race past the pre-check.
var (
	// ErrDuplicateBooking: a booking already exists for the same
	// (appointmentDate, email, treatment) tuple.
	ErrDuplicateBooking = errors.New("booking already exists for date, email and treatment")
	// ErrSlotTaken: another patient already holds the same
	// (appointmentDate, treatment, slot).
	ErrSlotTaken = errors.New("slot already booked for date and treatment")
)

// BookingRepository persists booking records. Bookings are never deleted;
// the paid/transactionId fields are mutated only through the payment repo's
// reconciliation transaction.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	CountByTuple(ctx context.Context, date, email, treatment string) (int64, error)
}
