package user

import (
	"context"
	"fmt"
	"time"

	userRepo "docportal/database/repository/user"
	"docportal/models"
	"docportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenLifetime = 24 * time.Hour

// DefaultUserService is the production user service.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// Upsert registers a user on first sign-in, or refreshes the stored name on a
// repeat sign-in.
func (s *DefaultUserService) Upsert(ctx context.Context, u models.User) (*models.User, error) {
	if u.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return s.Repo.Upsert(ctx, &u)
}

// GetAll lists every registered user.
func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// IsAdmin reports whether the email belongs to an admin. Unknown emails are
// simply not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// Promote grants the admin role to the user with the given ID.
func (s *DefaultUserService) Promote(ctx context.Context, id string) error {
	if err := s.Repo.SetRole(ctx, id, models.RoleAdmin); err != nil {
		return err
	}
	s.Logger.Info("user promoted to admin", zap.String("userId", id))
	return nil
}

// IssueToken returns a signed session token for a registered email.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUnknownUser
	}
	return utils.GenerateToken(u.ID, u.Email, tokenLifetime)
}
