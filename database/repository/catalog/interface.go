package catalogRepo

import (
	"context"

	"docportal/models"
)

// CatalogRepository provides read access to the appointment-option catalog.
// The catalog is reference data; this server never mutates it.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
	GetByName(ctx context.Context, name string) (*models.AppointmentOption, error)
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
}
