package services_test

import (
	"testing"

	"userorders/internal/models"
	"userorders/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderService(users *MockUserRepository, orders *MockOrderRepository, pub services.EventPublisher) *services.OrderService {
	return services.NewOrderService(users, orders, pub, zap.NewNop())
}

func TestOrderService_AddOrder(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	pub := new(MockPublisher)
	service := newOrderService(users, orders, pub)

	a := models.Order{ProductName: "A", Price: 10, Quantity: 2}
	b := &models.Order{ProductName: "B", Price: 5, Quantity: 1}

	users.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	orders.On("Append", ctx, int64(1), b).Return(nil).Once()
	users.On("GetByUserID", ctx, int64(1)).Return(sampleUser(), nil).Once()
	orders.On("ListByUser", ctx, int64(1)).Return([]models.Order{a, *b}, nil).Once()
	pub.On("PublishEvent", services.EventOrderAdded, mock.MatchedBy(func(ev services.UserEvent) bool {
		return ev.UserID == 1 && ev.Order == b
	})).Return(nil).Once()

	user, err := service.AddOrder(ctx, "1", b)
	require.NoError(t, err)
	require.Len(t, user.Orders, 2)
	assert.Equal(t, "A", user.Orders[0].ProductName)
	assert.Equal(t, "B", user.Orders[1].ProductName)
	users.AssertExpectations(t)
	orders.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestOrderService_GetOrders(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	service := newOrderService(users, orders, nil)

	users.On("Exists", ctx, int64(1)).Return(true, nil)

	orders.On("ListByUser", ctx, int64(1)).Return([]models.Order{{ProductName: "A"}}, nil).Once()
	list, err := service.GetOrders(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	orders.On("ListByUser", ctx, int64(1)).Return([]models.Order{}, nil).Once()
	list, err = service.GetOrders(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, list, "empty orders collapse to nil")

	orders.AssertExpectations(t)
}

func TestOrderService_CalculateTotalPrice(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	service := newOrderService(users, orders, nil)

	users.On("Exists", ctx, int64(1)).Return(true, nil)

	orders.On("ListByUser", ctx, int64(1)).Return([]models.Order{
		{ProductName: "A", Price: 10, Quantity: 2},
		{ProductName: "B", Price: 5, Quantity: 1},
	}, nil).Once()
	total, err := service.CalculateTotalPrice(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, total)

	orders.On("ListByUser", ctx, int64(1)).Return([]models.Order{}, nil).Once()
	total, err = service.CalculateTotalPrice(ctx, "1")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestOrderService_GateFailures(t *testing.T) {
	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	service := newOrderService(users, orders, nil)

	users.On("Exists", ctx, int64(404)).Return(false, nil)

	for _, raw := range []string{"404", "not-a-number"} {
		_, err := service.AddOrder(ctx, raw, &models.Order{ProductName: "A", Price: 1, Quantity: 1})
		assert.EqualError(t, err, "User does not exist!")

		_, err = service.GetOrders(ctx, raw)
		assert.EqualError(t, err, "User does not exist!")

		_, err = service.CalculateTotalPrice(ctx, raw)
		assert.EqualError(t, err, "User does not exist!")
	}

	orders.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}
