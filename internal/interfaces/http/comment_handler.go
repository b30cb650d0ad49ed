package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/futurestec/crm-leads-api/internal/application/comment"
	"github.com/futurestec/crm-leads-api/internal/application/dto"
	"github.com/futurestec/crm-leads-api/internal/domain"
)

// CommentHandler maneja los comentarios de un lead (protegido).
type CommentHandler struct {
	uc *comment.CommentUseCase
}

// NewCommentHandler construye el handler.
func NewCommentHandler(uc *comment.CommentUseCase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// List GET /api/leads/:id/comments
func (h *CommentHandler) List(c *fiber.Ctx) error {
	leadID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Lead ID must be numeric"})
	}
	list, err := h.uc.ListForLead(leadID)
	if err != nil {
		log.Error().Err(err).Int64("lead_id", leadID).Msg("listar comentarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to fetch comments"})
	}
	return c.JSON(list)
}

// Add POST /api/leads/:id/comments
// El autor se toma del token (middleware), nunca del body.
func (h *CommentHandler) Add(c *fiber.Ctx) error {
	leadID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Lead ID must be numeric"})
	}
	var in dto.AddCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	created, err := h.uc.Add(leadID, GetUserID(c), in.Content)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Comment content is required"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Lead not found"})
		}
		log.Error().Err(err).Int64("lead_id", leadID).Msg("agregar comentario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to add comment"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
