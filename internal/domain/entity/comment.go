package entity

import "time"

// Comment comentario inmutable sobre un lead (sin update ni delete expuestos).
// UserName y FullName vienen del JOIN con users en lectura, no se persisten aquí.
type Comment struct {
	ID        int64
	LeadID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time
	UserName  string
	FullName  string
}
