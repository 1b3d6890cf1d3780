package services

import (
	"context"

	"userorders/internal/models"
	"userorders/internal/repositories"

	"go.uber.org/zap"
)

// OrderService handles the orders owned by a user.
type OrderService struct {
	users  repositories.UserRepository
	orders repositories.OrderRepository
	events notifier
	log    *zap.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(users repositories.UserRepository, orders repositories.OrderRepository, publisher EventPublisher, log *zap.Logger) *OrderService {
	return &OrderService{
		users:  users,
		orders: orders,
		events: notifier{publisher: publisher, log: log},
		log:    log,
	}
}

// AddOrder appends order to the user's orders and returns the updated user,
// orders included.
func (s *OrderService) AddOrder(ctx context.Context, rawID string, order *models.Order) (*models.User, error) {
	id, err := gate(ctx, s.users, rawID)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Append(ctx, id, order); err != nil {
		return nil, fromRepository(err)
	}
	s.events.notify(UserEvent{Event: EventOrderAdded, UserID: id, Order: order})

	user, err := s.users.GetByUserID(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	orders, err := s.orders.ListByUser(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	user.Orders = orders
	return user, nil
}

// GetOrders returns the user's orders. A user without orders yields nil, whether
// the list was never written or is empty.
func (s *OrderService) GetOrders(ctx context.Context, rawID string) ([]models.Order, error) {
	id, err := gate(ctx, s.users, rawID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByUser(ctx, id)
	if err != nil {
		return nil, fromRepository(err)
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return orders, nil
}

// CalculateTotalPrice sums price*quantity over the user's orders. No rounding.
func (s *OrderService) CalculateTotalPrice(ctx context.Context, rawID string) (float64, error) {
	orders, err := s.GetOrders(ctx, rawID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, o := range orders {
		total += o.Total()
	}
	return total, nil
}
