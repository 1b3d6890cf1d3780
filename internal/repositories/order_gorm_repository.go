package repositories

import (
	"context"
	"fmt"

	"userorders/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Append inserts the order for the user, failing with ErrNotFound if the user is gone.
func (r *GORMOrderRepository) Append(ctx context.Context, userID int64, order *models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		order.ID = 0
		order.OwnerID = owner.ID
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to add order for user %d: %w", userID, err)
	}
	return nil
}

// ListByUser returns the user's orders ordered by insertion.
func (r *GORMOrderRepository) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	var owner models.User
	db := r.db.WithContext(ctx)
	if err := db.Select("id").First(&owner, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, translate(err))
	}
	var orders []models.Order
	if err := db.Where("owner_id = ?", owner.ID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	return orders, nil
}
