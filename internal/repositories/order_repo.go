package repositories

import (
	"context"

	"userorders/internal/models"
)

// OrderRepository defines the interface for the orders owned by a user.
type OrderRepository interface {
	// Append adds order at the end of the user's orders.
	Append(ctx context.Context, userID int64, order *models.Order) error
	// ListByUser returns the user's orders in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
}
