package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/viralshorts/internal/service"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

type FootageHandler struct {
	s service.FootageService
}

func NewFootageHandler(s service.FootageService) *FootageHandler {
	return &FootageHandler{s: s}
}

func (h *FootageHandler) Search(c *fiber.Ctx) error {
	videos, err := h.s.Search(c.Context(), c.Query("query"))
	if err != nil {
		return WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(transfer.FootageListResponse{Videos: videos})
}
