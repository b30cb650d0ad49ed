package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("credenciales inválidas")
	ErrBulkFieldNotAllowed = errors.New("campo no permitido en actualización masiva")
	ErrNotifierFailed      = errors.New("fallo el envío de la notificación")
)
