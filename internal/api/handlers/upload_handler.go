package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/viralshorts/internal/service"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

type UploadHandler struct {
	s service.UploadService
}

func NewUploadHandler(s service.UploadService) *UploadHandler {
	return &UploadHandler{s: s}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	var req transfer.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	resp, err := h.s.Upload(c.Context(), &req)
	if err != nil {
		return WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *UploadHandler) AuthCallback(c *fiber.Ctx) error {
	var req transfer.AuthCallbackRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := h.s.ExchangeCode(c.Context(), req.Code); err != nil {
		return WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Authentication successful! You can now upload.",
	})
}
