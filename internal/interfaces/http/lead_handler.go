package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/futurestec/crm-leads-api/internal/application/dto"
	"github.com/futurestec/crm-leads-api/internal/application/lead"
	"github.com/futurestec/crm-leads-api/internal/domain"
)

// LeadHandler maneja las peticiones HTTP del ciclo de vida del lead (protegido).
type LeadHandler struct {
	uc *lead.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *lead.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// List GET /api/leads
func (h *LeadHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar leads")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to fetch leads"})
	}
	return c.JSON(list)
}

// GetByID GET /api/leads/:id
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Lead ID must be numeric"})
	}
	l, err := h.uc.Get(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Lead not found"})
		}
		log.Error().Err(err).Int64("lead_id", id).Msg("obtener lead")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to fetch lead"})
	}
	return c.JSON(l)
}

// Create POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.LeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Name, email and mobile are required"})
		}
		log.Error().Err(err).Msg("crear lead")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to create lead"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateLeadResponse{ID: id, Message: "Lead created successfully"})
}

// Update PUT /api/leads/:id
// Responde éxito aunque el ID no exista (cero filas afectadas); el caller no
// debe inferir existencia de un 200.
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Lead ID must be numeric"})
	}
	var in dto.LeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if err := h.uc.Update(id, in); err != nil {
		log.Error().Err(err).Int64("lead_id", id).Msg("actualizar lead")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to update lead"})
	}
	return c.JSON(dto.MessageResponse{Message: "Lead updated successfully"})
}

// BulkUpdate PUT /api/leads/bulk/update
func (h *LeadHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.BulkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	count, err := h.uc.BulkUpdate(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			if len(in.IDs) == 0 {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "No lead IDs provided"})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Field and value are required"})
		}
		if err == domain.ErrBulkFieldNotAllowed {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Cannot update this field in bulk"})
		}
		log.Error().Err(err).Str("field", in.Field).Msg("bulk update leads")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to update leads"})
	}
	return c.JSON(dto.BulkUpdateResponse{
		Count:   count,
		Message: "Successfully updated " + strconv.FormatInt(count, 10) + " leads",
	})
}

// Delete DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Lead ID must be numeric"})
	}
	if err := h.uc.Delete(id); err != nil {
		log.Error().Err(err).Int64("lead_id", id).Msg("borrar lead")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to delete lead"})
	}
	return c.JSON(dto.MessageResponse{Message: "Lead deleted successfully"})
}

// parseID lee el parámetro :id como entero.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
