package handlers

import (
	"userorders/internal/apperrors"
	"userorders/internal/models"
	"userorders/internal/services"
	"userorders/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validation.Validator
	respond  Responder
	log      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, validate *validation.Validator, respond Responder, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validate,
		respond:  respond,
		log:      log,
	}
}

// RegisterRoutes registers the user routes on router, which is mounted at /api/users.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/", h.HandleCreateUser)
	router.Get("/", h.HandleGetUsers)
	router.Get("/:userId", h.HandleGetUser)
	router.Put("/:userId", h.HandleUpdateUser)
	router.Delete("/:userId", h.HandleDeleteUser)
}

// parseUser decodes and validates a user body.
func (h *UserHandler) parseUser(c *fiber.Ctx) (*models.User, error) {
	var payload models.UserPayload
	if err := c.BodyParser(&payload); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}
	return h.validate.ValidateUser(&payload)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	user, err := h.parseUser(c)
	if err != nil {
		return h.respond.fail(c, "Failed to create user!", err)
	}

	created, err := h.service.CreateUser(c.UserContext(), user)
	if err != nil {
		h.log.Warn("create user failed", zap.Error(err))
		return h.respond.fail(c, "Failed to create user!", err)
	}
	return h.respond.ok(c, fiber.StatusCreated, "User created successfully!", created)
}

// HandleGetUsers lists every user.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		return h.respond.fail(c, "Failed to fetch users!", err)
	}
	return h.respond.ok(c, fiber.StatusOK, "Users fetched successfully!", users)
}

// HandleGetUser retrieves a single user by its userId.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.respond.fail(c, "Failed to fetch user!", err)
	}
	return h.respond.ok(c, fiber.StatusOK, "User fetched successfully!", user)
}

// HandleUpdateUser replaces an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	user, err := h.parseUser(c)
	if err != nil {
		return h.respond.fail(c, "Failed to update user!", err)
	}

	updated, err := h.service.UpdateUser(c.UserContext(), c.Params("userId"), user)
	if err != nil {
		h.log.Warn("update user failed", zap.String("user_id", c.Params("userId")), zap.Error(err))
		return h.respond.fail(c, "Failed to update user!", err)
	}
	return h.respond.ok(c, fiber.StatusOK, "User updated successfully!", updated)
}

// HandleDeleteUser removes a user. The response carries no data.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if _, err := h.service.DeleteUser(c.UserContext(), c.Params("userId")); err != nil {
		return h.respond.fail(c, "Failed to delete user!", err)
	}
	return h.respond.ok(c, fiber.StatusOK, "User deleted successfully!", nil)
}
