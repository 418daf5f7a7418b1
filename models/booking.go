package models

import "time"

// Booking is a patient's reservation of one slot of one treatment on one date.
//
// AppointmentDate is stored verbatim in the catalog's textual date format
// (e.g. "Jan 1, 2024") and is only ever compared by exact string equality.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"`
	Email           string    `bson:"email" json:"email"`
	Treatment       string    `bson:"treatment" json:"treatment"`
	Slot            string    `bson:"slot" json:"slot"`
	Price           float64   `bson:"price" json:"price"`
	Paid            bool      `bson:"paid" json:"paid"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
