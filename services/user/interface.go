package user

import (
	"context"
	"errors"

	"docportal/models"
)

// ErrUnknownUser: the email has never signed in.
var ErrUnknownUser = errors.New("user not registered")

// UserService manages user records, roles and session tokens.
type UserService interface {
	Upsert(ctx context.Context, u models.User) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id string) error
	// IssueToken returns a signed session token for a registered email,
	// or ErrUnknownUser.
	IssueToken(ctx context.Context, email string) (string, error)
}
