package repository

import "github.com/futurestec/crm-leads-api/internal/domain/entity"

// CommentRepository define el puerto de persistencia para Comment (append-only).
// Las lecturas incluyen username y full_name del autor vía JOIN.
type CommentRepository interface {
	ListByLead(leadID int64) ([]*entity.Comment, error)
	Create(comment *entity.Comment) (int64, error)
	GetByID(id int64) (*entity.Comment, error)
}
