package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/futurestec/crm-leads-api/internal/domain"
	"github.com/futurestec/crm-leads-api/internal/domain/entity"
	"github.com/futurestec/crm-leads-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	pool *pgxpool.Pool
}

// NewCommentRepository construye el adaptador de persistencia para comentarios.
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentSelect = `
	SELECT lc.id, lc.lead_id, lc.user_id, lc.content, lc.created_at, u.username, u.full_name
	FROM lead_comments lc
	JOIN users u ON u.id = lc.user_id`

// ListByLead devuelve los comentarios de un lead con su autor, más recientes primero.
func (r *CommentRepo) ListByLead(leadID int64) ([]*entity.Comment, error) {
	query := commentSelect + ` WHERE lc.lead_id = $1 ORDER BY lc.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, leadID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Comment
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.LeadID, &c.UserID, &c.Content, &c.CreatedAt, &c.UserName, &c.FullName); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create inserta un comentario y devuelve su ID. Si el lead fue borrado entre la
// verificación del caso de uso y el insert, el FK dispara domain.ErrNotFound.
func (r *CommentRepo) Create(comment *entity.Comment) (int64, error) {
	query := `
		INSERT INTO lead_comments (lead_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		comment.LeadID, comment.UserID, comment.Content, comment.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert comment: %w", err)
	}
	return id, nil
}

// GetByID obtiene un comentario por ID con los datos del autor. Devuelve (nil, nil) si no existe.
func (r *CommentRepo) GetByID(id int64) (*entity.Comment, error) {
	query := commentSelect + ` WHERE lc.id = $1`
	var c entity.Comment
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.LeadID, &c.UserID, &c.Content, &c.CreatedAt, &c.UserName, &c.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}
