package handlers

import (
	"fmt"

	"userorders/internal/apperrors"
	"userorders/internal/models"
	"userorders/internal/services"
	"userorders/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for the orders of a user.
type OrderHandler struct {
	service  *services.OrderService
	validate *validation.Validator
	respond  Responder
	log      *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, validate *validation.Validator, respond Responder, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validate,
		respond:  respond,
		log:      log,
	}
}

// RegisterRoutes registers the order routes on the /api/users router.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/:userId/orders")
	orderRoutes.Put("/", h.HandleAddOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/total-price", h.HandleTotalPrice)
}

// HandleAddOrder appends an order to the user's orders. The response carries no data.
func (h *OrderHandler) HandleAddOrder(c *fiber.Ctx) error {
	var body models.Order
	if err := c.BodyParser(&body); err != nil {
		return h.respond.fail(c, "Failed to add order!", apperrors.Invalid(err.Error()))
	}
	order, err := h.validate.ValidateOrder(&body)
	if err != nil {
		return h.respond.fail(c, "Failed to add order!", err)
	}

	if _, err := h.service.AddOrder(c.UserContext(), c.Params("userId"), order); err != nil {
		h.log.Warn("add order failed", zap.String("user_id", c.Params("userId")), zap.Error(err))
		return h.respond.fail(c, "Failed to add order!", err)
	}
	return h.respond.ok(c, fiber.StatusOK, "Order added successfully!", nil)
}

// HandleGetOrders lists the user's orders; orders is null when there are none.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.respond.fail(c, "Failed to fetch orders!", err)
	}
	return h.respond.ok(c, fiber.StatusOK, "Orders fetched successfully!", fiber.Map{"orders": orders})
}

// HandleTotalPrice reports the sum of price*quantity with two decimals.
func (h *OrderHandler) HandleTotalPrice(c *fiber.Ctx) error {
	total, err := h.service.CalculateTotalPrice(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.respond.fail(c, "Failed to calculate total price!", err)
	}
	return h.respond.ok(c, fiber.StatusOK, "Total price calculated successfully!", fiber.Map{
		"totalPrice": fmt.Sprintf("%.2f", total),
	})
}
