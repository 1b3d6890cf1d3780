package server

import (
	"errors"

	"userorders/internal/handlers"
	"userorders/internal/middleware"
	"userorders/internal/services"
	"userorders/internal/validation"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Options wires the app's collaborators.
type Options struct {
	Store       *Store
	Publisher   services.EventPublisher // optional
	BcryptCost  int
	StrictCodes bool
	Log         *zap.Logger
	// Checks are extra /health dependencies beside the database.
	Checks map[string]handlers.Pinger
}

// New builds the fiber app with middleware and every route mounted.
func New(opts Options) *fiber.App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	respond := handlers.NewResponder(opts.StrictCodes)

	app := fiber.New(fiber.Config{
		AppName:               "userorders",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(),
	})

	prom := fiberprometheus.NewWithRegistry(prometheus.NewRegistry(), "userorders", "http", "", nil)
	prom.RegisterAt(app, "/metrics")

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDLocal,
	}))
	app.Use(prom.Middleware)
	app.Use(middleware.RequestLogger(log))
	// Inside the logger so a recovered panic is logged as a 500.
	app.Use(recover.New())
	app.Use(cors.New())

	validate := validation.New()
	userService := services.NewUserService(opts.Store.Users, services.NewBcryptHasher(opts.BcryptCost), opts.Publisher, log)
	orderService := services.NewOrderService(opts.Store.Users, opts.Store.Orders, opts.Publisher, log)

	checks := map[string]handlers.Pinger{"database": opts.Store.Ping}
	for name, check := range opts.Checks {
		checks[name] = check
	}

	handlers.NewRootHandler(respond, checks).RegisterRoutes(app)

	users := app.Group("/api/users")
	handlers.NewOrderHandler(orderService, validate, respond, log).RegisterRoutes(users)
	handlers.NewUserHandler(userService, validate, respond, log).RegisterRoutes(users)

	return app
}

// errorHandler renders errors that escape a handler, such as unknown routes
// and recovered panics, in the failure envelope.
func errorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		return c.Status(status).JSON(handlers.ErrorEnvelope{
			Message: "Request failed!",
			Error: handlers.ErrorDetail{
				Code:        status,
				Description: err.Error(),
			},
		})
	}
}
