package repository

import "github.com/futurestec/crm-leads-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// FindActiveByUsername devuelve (nil, nil) si no hay usuario activo con ese username.
	FindActiveByUsername(username string) (*entity.User, error)
}
