package services

import (
	"context"

	"userorders/internal/apperrors"
	"userorders/internal/models"
	"userorders/internal/repositories"

	"go.uber.org/zap"
)

// UserService handles business logic related to users.
type UserService struct {
	users  repositories.UserRepository
	hasher PasswordHasher
	events notifier
	log    *zap.Logger
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(users repositories.UserRepository, hasher PasswordHasher, publisher EventPublisher, log *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		events: notifier{publisher: publisher, log: log},
		log:    log,
	}
}

// CreateUser hashes the password, persists the user and returns the stored
// record re-read without password and orders.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Failed to secure password")
	}
	user.Password = hashed

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fromRepository(err)
	}

	created, err := s.users.GetByUserID(ctx, user.UserID)
	if err != nil {
		return nil, fromRepository(err)
	}
	s.log.Info("user created", zap.Int64("user_id", created.UserID))
	s.events.notify(UserEvent{Event: EventUserCreated, UserID: created.UserID, Username: created.Username})

	out := created.WithoutOrders()
	return &out, nil
}

// GetAllUsers retrieves every user with orders cleared.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fromRepository(err)
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.WithoutOrders())
	}
	return out, nil
}

// GetUserByID retrieves a single user without password and orders.
func (s *UserService) GetUserByID(ctx context.Context, rawID string) (*models.User, error) {
	id, err := gate(ctx, s.users, rawID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByUserID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	out := user.WithoutOrders()
	return &out, nil
}

// UpdateUser replaces every field of an existing user and returns the stored
// record with orders cleared. The new password is hashed before it is stored.
func (s *UserService) UpdateUser(ctx context.Context, rawID string, user *models.User) (*models.User, error) {
	id, err := gate(ctx, s.users, rawID)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Failed to secure password")
	}
	user.Password = hashed

	if err := s.users.Replace(ctx, id, user); err != nil {
		return nil, fromRepository(err)
	}

	updated, err := s.users.GetByUserID(ctx, user.UserID)
	if err != nil {
		return nil, fromRepository(err)
	}
	s.events.notify(UserEvent{Event: EventUserUpdated, UserID: updated.UserID, Username: updated.Username})

	out := updated.WithoutOrders()
	return &out, nil
}

// DeleteUser removes a user and returns the removed record.
func (s *UserService) DeleteUser(ctx context.Context, rawID string) (*models.User, error) {
	id, err := gate(ctx, s.users, rawID)
	if err != nil {
		return nil, err
	}
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	s.log.Info("user deleted", zap.Int64("user_id", id))
	s.events.notify(UserEvent{Event: EventUserDeleted, UserID: id, Username: deleted.Username})
	return deleted, nil
}
