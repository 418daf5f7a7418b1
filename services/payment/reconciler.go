package payment

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "docportal/database/repository/booking"
	paymentRepo "docportal/database/repository/payment"
	"docportal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultService is the production payment reconciler.
type DefaultService struct {
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// Confirm applies one successful payment to its booking: the payment record
// and the booking's paid/transactionId flip are committed together by the
// repository transaction.
//
// Idempotency rides on the unique transactionId index: a repeat confirmation
// finds the earlier payment and returns the already-paid booking unchanged.
// A fresh transactionId against a booking that is already paid is a conflict,
// not a replay, and is rejected without writing a second payment record.
func (s *DefaultService) Confirm(ctx context.Context, bookingID, transactionID string, amount float64) (*models.Booking, error) {
	if bookingID == "" || transactionID == "" || amount <= 0 {
		return nil, ErrInvalidRequest
	}

	p := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     bookingID,
		TransactionID: transactionID,
		Amount:        amount,
	}

	updated, err := s.Payments.ApplyPayment(ctx, p)
	if err != nil {
		switch {
		case errors.Is(err, paymentRepo.ErrDuplicateTransaction):
			return s.resolveDuplicate(ctx, transactionID)
		case errors.Is(err, paymentRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, paymentRepo.ErrBookingAlreadyPaid):
			s.Logger.Warn("payment rejected, booking already settled",
				zap.String("bookingId", bookingID),
				zap.String("transactionId", transactionID))
			return nil, ErrAlreadyPaid
		default:
			return nil, err
		}
	}

	s.Logger.Info("payment reconciled",
		zap.String("bookingId", bookingID),
		zap.String("transactionId", transactionID),
		zap.Float64("amount", amount))

	return updated, nil
}

// resolveDuplicate handles a re-submitted transactionId by returning the
// booking the original payment settled.
func (s *DefaultService) resolveDuplicate(ctx context.Context, transactionID string) (*models.Booking, error) {
	existing, err := s.Payments.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("transaction %s reported duplicate but no payment record found", transactionID)
	}

	b, err := s.Bookings.GetByID(ctx, existing.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	s.Logger.Warn("duplicate payment confirmation ignored",
		zap.String("transactionId", transactionID),
		zap.String("bookingId", existing.BookingID))

	return b, nil
}
