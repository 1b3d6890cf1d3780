package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestIDLocal is the fiber locals key the requestid middleware stores the id under.
const RequestIDLocal = "requestid"

// RequestLogger logs one line per request with its outcome and latency.
// Server errors are logged at error level, client errors at warn.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// Let the app's error handler set the final status before we read it.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		// Ctx strings alias fasthttp buffers that are reused after the request,
		// so everything handed to zap is copied.
		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.String("ip", utils.CopyString(c.IP())),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", utils.CopyString(c.Get(fiber.HeaderUserAgent))),
		}
		if rid, ok := c.Locals(RequestIDLocal).(string); ok {
			fields = append(fields, zap.String("request_id", utils.CopyString(rid)))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("request failed", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request processed", fields...)
		}
		return nil
	}
}
