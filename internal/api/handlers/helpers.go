package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/viralshorts/internal/models"
)

// WriteError maps a pipeline failure onto the response contract. Nothing is
// swallowed: the message is always the step's own diagnostic.
func WriteError(c *fiber.Ctx, err error) error {
	var (
		validation  *models.ValidationError
		precond     *models.PreconditionError
		unavailable *models.ServiceUnavailableError
		authReq     *models.AuthRequiredError
		notFound    *models.NotFoundError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &precond):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.As(err, &authReq):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "Authentication Required",
			"authUrl": authReq.AuthURL,
		})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.As(err, &unavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
