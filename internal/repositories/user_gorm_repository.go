package repositories

import (
	"context"
	"errors"
	"fmt"

	"userorders/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts the user together with any orders it carries.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translate(err))
	}
	return nil
}

// GetAll retrieves all users without their orders.
func (r *GORMUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Omit("password").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByUserID retrieves a user by userId, without password and orders.
func (r *GORMUserRepository) GetByUserID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Omit("password").First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, translate(err))
	}
	return &user, nil
}

// Exists reports whether a user with userId is stored.
func (r *GORMUserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	return n > 0, nil
}

// Replace locks the current row and overwrites it in one transaction, so a
// concurrent delete surfaces as ErrNotFound instead of resurrecting the row.
func (r *GORMUserRepository) Replace(ctx context.Context, userID int64, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		user.ID = current.ID
		user.CreatedAt = current.CreatedAt
		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			return translate(err)
		}
		if user.Orders == nil {
			return nil
		}
		if err := tx.Where("owner_id = ?", current.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if len(user.Orders) == 0 {
			return nil
		}
		for i := range user.Orders {
			user.Orders[i].ID = 0
			user.Orders[i].OwnerID = current.ID
		}
		return tx.Create(&user.Orders).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return nil
}

// Delete removes the user and its orders and returns the removed record.
func (r *GORMUserRepository) Delete(ctx context.Context, userID int64) (*models.User, error) {
	var deleted models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Omit("password").
			First(&deleted, "user_id = ?", userID).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("owner_id = ?", deleted.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, deleted.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	return &deleted, nil
}

func lockUser(tx *gorm.DB, userID int64) (*models.User, error) {
	var current models.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "created_at").
		First(&current, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &current, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
