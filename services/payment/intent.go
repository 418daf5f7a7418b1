package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// amountInCents converts a price in currency units to the smallest
// denomination. Rounded, not truncated: 19.99 must become 1999, not 1998.
func amountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent asks Stripe for a PaymentIntent covering the booking price and
// returns its client secret. Prices are stored in currency units; Stripe
// wants the smallest denomination.
func (s *DefaultService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidRequest
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Debug("payment intent created", zap.String("id", pi.ID))
	return pi.ClientSecret, nil
}
