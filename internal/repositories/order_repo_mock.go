package repositories

import (
	"context"

	"userorders/internal/models"
)

// Append adds an order at the end of the user's orders.
func (r *MockUserRepository) Append(_ context.Context, userID int64, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	r.nextOrderID++
	order.ID = r.nextOrderID
	order.OwnerID = u.ID
	u.Orders = append(append([]models.Order(nil), u.Orders...), *order)
	r.users[userID] = u
	return nil
}

// ListByUser returns a copy of the user's orders.
func (r *MockUserRepository) ListByUser(_ context.Context, userID int64) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]models.Order(nil), u.Orders...), nil
}
