package handlers

import (
	"userorders/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the body of every successful response.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the status code and the underlying error text.
type ErrorDetail struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Responder writes envelopes. With strict set, failures carry a status that
// follows the error kind; otherwise every failure is a 400.
type Responder struct {
	strict bool
}

// NewResponder creates a Responder.
func NewResponder(strict bool) Responder {
	return Responder{strict: strict}
}

func (r Responder) ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{Success: true, Message: message, Data: data})
}

func (r Responder) fail(c *fiber.Ctx, message string, err error) error {
	status := r.StatusFor(err)
	return c.Status(status).JSON(ErrorEnvelope{
		Message: message,
		Error:   ErrorDetail{Code: status, Description: err.Error()},
	})
}

// StatusFor picks the HTTP status reported for err.
func (r Responder) StatusFor(err error) int {
	if !r.strict {
		return fiber.StatusBadRequest
	}
	switch apperrors.CodeOf(err) {
	case apperrors.CodeNotFound:
		return fiber.StatusNotFound
	case apperrors.CodeConflict:
		return fiber.StatusConflict
	case apperrors.CodeInvalid:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
