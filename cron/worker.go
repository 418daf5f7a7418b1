package cron

import (
	"context"
	"encoding/json"

	"docportal/config"
	"docportal/models"
	"docportal/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartConfirmationWorker runs the background worker that delivers booking
// confirmation emails enqueued by the admission controller. The returned
// server should be Shutdown on process exit.
func StartConfirmationWorker(sender notification.EmailSender, logger *zap.Logger) *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingConfirmation, handleConfirmationTask(sender, logger))

	go func() {
		logger.Info("starting confirmation email worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("confirmation email worker stopped", zap.Error(err))
		}
	}()

	return srv
}

func handleConfirmationTask(sender notification.EmailSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid confirmation payload", zap.Error(err))
			return err
		}

		b := models.Booking{
			ID:              p.BookingID,
			Email:           p.Email,
			Treatment:       p.Treatment,
			AppointmentDate: p.Date,
			Slot:            p.Slot,
		}

		err := sender.Send(ctx, p.Email, notification.ConfirmationSubject(b), notification.ConfirmationBody(b))
		if err != nil {
			// Returning the error lets asynq retry delivery; the booking
			// itself was committed long ago and is unaffected.
			logger.Error("confirmation email delivery failed",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
