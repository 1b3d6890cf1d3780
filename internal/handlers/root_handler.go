package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Greeting is the message served at the root path.
const Greeting = "Amader API endpoint e apnake sagotom"

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

// RootHandler serves the greeting and the health check.
type RootHandler struct {
	respond Responder
	checks  map[string]Pinger
}

// NewRootHandler creates a RootHandler. checks are run by /health; a nil map
// reports healthy.
func NewRootHandler(respond Responder, checks map[string]Pinger) *RootHandler {
	return &RootHandler{respond: respond, checks: checks}
}

// RegisterRoutes registers / and /health on the app root.
func (h *RootHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGreeting)
	router.Get("/health", h.HandleHealth)
}

// HandleGreeting returns the static greeting.
func (h *RootHandler) HandleGreeting(c *fiber.Ctx) error {
	return h.respond.ok(c, fiber.StatusOK, Greeting, fiber.Map{"a": Greeting})
}

// HandleHealth runs every dependency check and reports 503 if any fails.
func (h *RootHandler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	deps := fiber.Map{}
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			status = fiber.StatusServiceUnavailable
			deps[name] = err.Error()
			continue
		}
		deps[name] = "ok"
	}

	state := "healthy"
	if status != fiber.StatusOK {
		state = "unhealthy"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":       state,
		"time":         time.Now().Format(time.RFC3339),
		"dependencies": deps,
	})
}
