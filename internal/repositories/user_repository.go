package repositories

import (
	"context"
	"errors"

	"userorders/internal/models"
)

var (
	// ErrNotFound is returned when no user has the requested userId.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when userId, username or email is already taken.
	ErrDuplicate = errors.New("userId, username or email is already taken")
)

// UserRepository defines the interface for user data access.
// Reads never return the password hash, and only the order repository loads orders.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByUserID(ctx context.Context, userID int64) (*models.User, error)
	Exists(ctx context.Context, userID int64) (bool, error)
	// Replace overwrites every field of the user. Orders are replaced only when
	// user.Orders is non-nil.
	Replace(ctx context.Context, userID int64, user *models.User) error
	Delete(ctx context.Context, userID int64) (*models.User, error)
}
