package repository

import "github.com/futurestec/crm-leads-api/internal/domain/entity"

// LeadRepository define el puerto de persistencia para Lead.
// GetByID devuelve (nil, nil) cuando no existe la fila; el caso de uso decide el error.
type LeadRepository interface {
	List() ([]*entity.Lead, error)
	GetByID(id int64) (*entity.Lead, error)
	Create(lead *entity.Lead) (int64, error)
	// Update sobrescribe los campos mutables sin verificar existencia:
	// cero filas afectadas también es éxito.
	Update(lead *entity.Lead) error
	// BulkUpdate escribe un único campo de la allow-list en todas las filas
	// referenciadas y devuelve cuántas fueron afectadas.
	BulkUpdate(ids []int64, field, value string) (int64, error)
	Delete(id int64) error
	SetInterested(id int64, interested bool) error
}
