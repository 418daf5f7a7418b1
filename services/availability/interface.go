package availability

import (
	"context"

	"docportal/models"
)

// Service answers availability and catalog queries.
type Service interface {
	// OptionsForDate returns the catalog with each option's slots reduced
	// to the ones still open on the given date.
	OptionsForDate(ctx context.Context, date string) ([]models.AppointmentOption, error)
	// Specialties returns the distinct treatment names in the catalog.
	Specialties(ctx context.Context) ([]models.Specialty, error)
}
