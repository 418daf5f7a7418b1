package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"docportal/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeBookingConfirmation is the asynq task type for confirmation emails.
const TypeBookingConfirmation = "email:booking_confirmation"

// ConfirmationPayload is the task payload carried through redis.
type ConfirmationPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
}

// AsynqNotifier implements ConfirmationNotifier by enqueueing a task for the
// background worker. Enqueueing keeps the admission path fast and makes the
// actual delivery retryable without touching the booking.
type AsynqNotifier struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// BookingConfirmed enqueues a confirmation-email task for the booking.
func (n *AsynqNotifier) BookingConfirmed(ctx context.Context, booking models.Booking) error {
	payload, err := json.Marshal(ConfirmationPayload{
		BookingID: booking.ID,
		Email:     booking.Email,
		Treatment: booking.Treatment,
		Date:      booking.AppointmentDate,
		Slot:      booking.Slot,
	})
	if err != nil {
		return fmt.Errorf("marshal confirmation payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingConfirmation, payload)
	info, err := n.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	if err != nil {
		return fmt.Errorf("enqueue confirmation task: %w", err)
	}

	n.Logger.Debug("confirmation task enqueued",
		zap.String("bookingId", booking.ID),
		zap.String("taskId", info.ID))
	return nil
}
