package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/viralshorts/internal/service"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

type VoiceHandler struct {
	s service.VoiceService
}

func NewVoiceHandler(s service.VoiceService) *VoiceHandler {
	return &VoiceHandler{s: s}
}

func (h *VoiceHandler) Synthesize(c *fiber.Ctx) error {
	var req transfer.TTSRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	resp, err := h.s.Synthesize(c.Context(), req.Text, req.Voice)
	if err != nil {
		return WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *VoiceHandler) ListVoices(c *fiber.Ctx) error {
	voices, err := h.s.ListVoices(c.Context())
	if err != nil {
		return WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(transfer.VoiceListResponse{Voices: voices})
}
