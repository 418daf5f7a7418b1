package booking

import (
	"context"

	"docportal/models"
)

// AdmissionService accepts booking candidates into persistent storage after
// conflict checking.
type AdmissionService interface {
	Submit(ctx context.Context, candidate models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
}
