package comment

import (
	"fmt"
	"strings"
	"time"

	"github.com/futurestec/crm-leads-api/internal/application/dto"
	"github.com/futurestec/crm-leads-api/internal/domain"
	"github.com/futurestec/crm-leads-api/internal/domain/entity"
	"github.com/futurestec/crm-leads-api/internal/domain/repository"
)

// CommentUseCase comentarios append-only de un lead.
type CommentUseCase struct {
	comments repository.CommentRepository
	leads    repository.LeadRepository
}

// NewCommentUseCase construye el caso de uso.
func NewCommentUseCase(comments repository.CommentRepository, leads repository.LeadRepository) *CommentUseCase {
	return &CommentUseCase{comments: comments, leads: leads}
}

// ListForLead devuelve los comentarios del lead con su autor, más recientes primero.
// Un lead inexistente devuelve lista vacía, igual que uno sin comentarios.
func (uc *CommentUseCase) ListForLead(leadID int64) ([]*dto.CommentResponse, error) {
	list, err := uc.comments.ListByLead(leadID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommentResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCommentResponse(c))
	}
	return out, nil
}

// Add agrega un comentario al lead en nombre del usuario autenticado.
// Falla con ErrNotFound si el lead no existe y con ErrInvalidInput si el
// contenido viene vacío. Devuelve la fila recién creada releída con el JOIN
// del autor (no el eco del insert).
func (uc *CommentUseCase) Add(leadID, userID int64, content string) (*dto.CommentResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidInput
	}
	l, err := uc.leads.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	id, err := uc.comments.Create(&entity.Comment{
		LeadID:    leadID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	created, err := uc.comments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("comentario %d no encontrado tras el insert", id)
	}
	return toCommentResponse(created), nil
}

func toCommentResponse(c *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        c.ID,
		LeadID:    c.LeadID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UserName:  c.UserName,
		FullName:  c.FullName,
	}
}
