package models

import "time"

// Doctor is one member of the clinic roster. Specialty references an
// AppointmentOption name from the catalog.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Specialty string    `bson:"specialty" json:"specialty"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
