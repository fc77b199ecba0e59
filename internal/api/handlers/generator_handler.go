package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/viralshorts/internal/service"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

type GeneratorHandler struct {
	s service.PackageGenerator
}

func NewGeneratorHandler(s service.PackageGenerator) *GeneratorHandler {
	return &GeneratorHandler{s: s}
}

func (h *GeneratorHandler) Generate(c *fiber.Ctx) error {
	var req transfer.GeneratorConfig
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	pkg, err := h.s.Generate(c.Context(), &req)
	if err != nil {
		return WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(pkg)
}
