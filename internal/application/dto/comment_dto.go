package dto

import "time"

// AddCommentRequest entrada para comentar un lead. El autor sale del token, no del body.
type AddCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CommentResponse salida de un comentario con los datos del autor (JOIN con users).
type CommentResponse struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"lead_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
}
