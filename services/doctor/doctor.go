package doctor

import (
	"context"
	"errors"

	catalogRepo "docportal/database/repository/catalog"
	doctorRepo "docportal/database/repository/doctor"
	"docportal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUnknownSpecialty: the specialty is not a treatment in the catalog.
	ErrUnknownSpecialty = errors.New("specialty not found in catalog")
	// ErrMissingFields: name, email and specialty are required.
	ErrMissingFields = errors.New("name, email and specialty are required")
)

// DoctorService manages the clinic roster.
type DoctorService interface {
	Add(ctx context.Context, d models.Doctor) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Remove(ctx context.Context, id string) error
}

// DefaultDoctorService is the production roster service.
type DefaultDoctorService struct {
	Repo    doctorRepo.DoctorRepository
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

// Add validates the doctor's specialty against the catalog and stores the
// record.
func (s *DefaultDoctorService) Add(ctx context.Context, d models.Doctor) (*models.Doctor, error) {
	if d.Name == "" || d.Email == "" || d.Specialty == "" {
		return nil, ErrMissingFields
	}

	opt, err := s.Catalog.GetByName(ctx, d.Specialty)
	if err != nil {
		return nil, err
	}
	if opt == nil {
		return nil, ErrUnknownSpecialty
	}

	d.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, &d); err != nil {
		return nil, err
	}

	s.Logger.Info("doctor added to roster",
		zap.String("doctorId", d.ID),
		zap.String("specialty", d.Specialty))
	return &d, nil
}

// List returns the full roster.
func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

// Remove deletes a doctor from the roster.
func (s *DefaultDoctorService) Remove(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
