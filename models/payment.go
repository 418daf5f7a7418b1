package models

import "time"

// Payment is the append-only record of one successful payment applied to a
// booking. Exactly one Payment exists per transaction reference.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
