package notification

import (
	"context"
	"fmt"

	"docportal/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailSender sends a single email message. Implementations can be swapped
// without changing callers.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
	logger   *zap.Logger
}

// NewSendGridSender creates a SendGrid email sender. Returns nil when no API
// key is configured; callers fall back to a log-only sender.
func NewSendGridSender(apiKey, from, fromName string, logger *zap.Logger) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	return &SendGridSender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, to, subject, body string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		subject,
		mail.NewEmail("", to),
		body,
		body,
	)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	s.logger.Info("confirmation email sent",
		zap.String("to", to),
		zap.Int("status", response.StatusCode))
	return nil
}

// LogSender logs the message instead of sending it. Used when email is not
// configured and in tests.
type LogSender struct {
	Logger *zap.Logger
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.Logger.Info("email delivery skipped (no sender configured)",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}

// ConfirmationSubject renders the subject line for a booking confirmation.
func ConfirmationSubject(b models.Booking) string {
	return fmt.Sprintf("Your booking for %s is confirmed", b.Treatment)
}

// ConfirmationBody renders the message body for a booking confirmation.
func ConfirmationBody(b models.Booking) string {
	return fmt.Sprintf(
		"Your booking for %s on %s at %s is confirmed. Please arrive a few minutes early.",
		b.Treatment, b.AppointmentDate, b.Slot,
	)
}
