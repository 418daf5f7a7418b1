package booking

import (
	"context"
	"errors"

	bookingRepo "docportal/database/repository/booking"
	catalogRepo "docportal/database/repository/catalog"
	"docportal/models"
	"docportal/services/availability"
	"docportal/services/notification"
	"docportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAdmissionService is the production admission controller.
type DefaultAdmissionService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Notifier notification.ConfirmationNotifier
	Cache    utils.Cache
	Logger   *zap.Logger
}

// Submit validates the candidate, runs the duplicate pre-check, persists the
// booking and fires the confirmation notification.
//
// Two concurrent submissions can both pass the pre-check on
// (date, email, treatment); the unique indexes on the bookings collection
// decide the race, so Create's duplicate-key translation maps to the same
// conflict errors as the pre-check.
func (s *DefaultAdmissionService) Submit(ctx context.Context, candidate models.Booking) (*models.Booking, error) {
	if err := validate(candidate); err != nil {
		return nil, err
	}

	opt, err := s.Catalog.GetByName(ctx, candidate.Treatment)
	if err != nil {
		return nil, err
	}
	if opt == nil {
		return nil, ErrUnknownTreatment
	}
	if !contains(opt.Slots, candidate.Slot) {
		return nil, ErrSlotNotOffered
	}

	count, err := s.Bookings.CountByTuple(ctx, candidate.AppointmentDate, candidate.Email, candidate.Treatment)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &AlreadyBookedError{Date: candidate.AppointmentDate}
	}

	candidate.ID = uuid.New().String()
	candidate.Paid = false
	candidate.TransactionID = ""

	if err := s.Bookings.Create(ctx, &candidate); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrDuplicateBooking):
			return nil, &AlreadyBookedError{Date: candidate.AppointmentDate}
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			return nil, &SlotTakenError{Slot: candidate.Slot, Date: candidate.AppointmentDate}
		default:
			return nil, err
		}
	}

	// The cached availability for this date is now stale.
	if err := s.Cache.Del(ctx, availability.CacheKey(candidate.AppointmentDate)); err != nil {
		s.Logger.Warn("availability cache invalidation failed",
			zap.String("date", candidate.AppointmentDate), zap.Error(err))
	}

	// Fire-and-forget: a failed notification never fails the booking.
	if err := s.Notifier.BookingConfirmed(ctx, candidate); err != nil {
		s.Logger.Error("booking confirmation notification failed",
			zap.String("bookingId", candidate.ID), zap.Error(err))
	}

	s.Logger.Info("booking admitted",
		zap.String("bookingId", candidate.ID),
		zap.String("treatment", candidate.Treatment),
		zap.String("date", candidate.AppointmentDate),
		zap.String("slot", candidate.Slot))

	return &candidate, nil
}

// GetByID fetches one booking. Returns nil without error when absent.
func (s *DefaultAdmissionService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

// ListByEmail fetches a patient's bookings.
func (s *DefaultAdmissionService) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Bookings.GetByEmail(ctx, email)
}

func validate(c models.Booking) error {
	switch {
	case c.AppointmentDate == "":
		return &ValidationError{Field: "appointmentDate"}
	case c.Email == "":
		return &ValidationError{Field: "email"}
	case c.Treatment == "":
		return &ValidationError{Field: "treatment"}
	case c.Slot == "":
		return &ValidationError{Field: "slot"}
	}
	return nil
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
