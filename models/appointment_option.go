package models

// AppointmentOption is one treatment in the clinic catalog together with the
// full set of bookable time slots for a day. Catalog records are reference
// data maintained by an external admin process; this server never writes them.
type AppointmentOption struct {
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}

// Specialty is the projection of an AppointmentOption down to its name,
// used by the treatment-name listing endpoint.
type Specialty struct {
	Name string `bson:"name" json:"name"`
}
