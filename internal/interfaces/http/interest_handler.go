package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/futurestec/crm-leads-api/internal/application/dto"
	"github.com/futurestec/crm-leads-api/internal/application/lead"
	"github.com/futurestec/crm-leads-api/internal/domain"
)

// InterestHandler maneja el toggle de interés con notificación por correo.
type InterestHandler struct {
	uc *lead.LeadUseCase
}

// NewInterestHandler construye el handler.
func NewInterestHandler(uc *lead.LeadUseCase) *InterestHandler {
	return &InterestHandler{uc: uc}
}

// Send POST /api/interest-email
// El flag de interés se persiste antes del envío: un fallo del notificador
// responde 502 pero no revierte el estado ya confirmado.
func (h *InterestHandler) Send(c *fiber.Ctx) error {
	var in dto.InterestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if in.LeadID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Lead ID is required"})
	}
	if err := h.uc.SetInterest(in.LeadID, in.Interested); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Lead not found"})
		}
		if err == domain.ErrNotifierFailed {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "NOTIFIER", Message: "Interest status updated but notification could not be sent"})
		}
		log.Error().Err(err).Int64("lead_id", in.LeadID).Msg("toggle de interés")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to process interest"})
	}
	msg := "Interest status updated"
	if in.Interested {
		msg = "Interest confirmed and email sent"
	}
	return c.JSON(dto.InterestResponse{Success: true, Message: msg})
}
