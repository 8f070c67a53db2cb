package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
)

// ErrorResponse is the uniform error body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// renderError maps domain errors onto HTTP status codes: validation failures
// are 400, missing records 404, name collisions 409, everything else 500.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	var validationErr memory.ValidationError
	var notFoundErr memory.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: validationErr.Error()})

	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: notFoundErr.Error()})

	case errors.Is(err, prompt.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})

	case errors.Is(err, prompt.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})

	default:
		s.logger.Error("request failed",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
}
