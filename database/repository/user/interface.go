package userRepo

import (
	"context"
	"errors"

	"docportal/models"
)

// ErrUserNotFound: no user exists under the supplied ID.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists user records.
type UserRepository interface {
	// Upsert inserts the user or, when the email is already registered,
	// refreshes the stored name. The stored record is returned.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id, role string) error
}
