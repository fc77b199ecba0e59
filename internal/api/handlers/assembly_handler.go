package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/viralshorts/internal/service"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

type AssemblyHandler struct {
	s service.AssemblyService
}

func NewAssemblyHandler(s service.AssemblyService) *AssemblyHandler {
	return &AssemblyHandler{s: s}
}

func (h *AssemblyHandler) Assemble(c *fiber.Ctx) error {
	var req transfer.AssembleRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	resp, err := h.s.Assemble(c.Context(), &req)
	if err != nil {
		return WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
