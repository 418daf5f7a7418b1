package doctorRepo

import (
	"context"
	"errors"

	"docportal/models"
)

var (
	// ErrDuplicateDoctor: the email is already on the roster.
	ErrDuplicateDoctor = errors.New("doctor already registered with this email")
	// ErrDoctorNotFound: no doctor exists under the supplied ID.
	ErrDoctorNotFound = errors.New("doctor not found")
)

// DoctorRepository persists the clinic's doctor roster.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id string) error
}
