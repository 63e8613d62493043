package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/core"
	"github.com/katalvlaran/graphtutor/exercise"
	"github.com/katalvlaran/graphtutor/internal/session"
	"github.com/katalvlaran/graphtutor/traversal"
	"github.com/katalvlaran/graphtutor/tutorial"
)

var errInvalidBody = errors.New("invalid body")

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errInvalidBody), errors.Is(err, session.ErrEmptyQuestion):
		return http.StatusBadRequest
	case errors.Is(err, tutorial.ErrUnknownConcept):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidNode),
		errors.Is(err, core.ErrNegativeCount),
		errors.Is(err, traversal.ErrUnknownAlgorithm),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrTooManyVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrUnknownPreset),
		errors.Is(err, exercise.ErrUnknownKind),
		errors.Is(err, session.ErrStepOutOfRange):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

// errorHandler renders every handler error as {"error": "..."}.
func (h *handler) errorHandler(c fiber.Ctx, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
