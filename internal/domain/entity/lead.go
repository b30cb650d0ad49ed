package entity

import "time"

// Estados del pipeline de ventas.
const (
	StatusNew       = "New"
	StatusContacted = "Contacted"
	StatusQualified = "Qualified"
	StatusConverted = "Converted"
	StatusClosed    = "Closed"
)

// Estados de seguimiento.
const (
	FollowupNone      = "None"
	FollowupScheduled = "Scheduled"
	FollowupCompleted = "Completed"
)

// Campos que la actualización masiva puede escribir. Es el único control de
// seguridad del sistema: ningún otro campo es escribible en bloque.
var bulkEditableFields = map[string]struct{}{
	"status":          {},
	"followup_status": {},
	"owner":           {},
}

// IsBulkEditable indica si un campo pertenece a la allow-list de bulk update.
func IsBulkEditable(field string) bool {
	_, ok := bulkEditableFields[field]
	return ok
}

// Lead contacto prospecto rastreado por el pipeline de ventas.
type Lead struct {
	ID             int64
	Name           string
	Email          string
	Mobile         string
	Status         string // New, Contacted, Qualified, Converted, Closed
	FollowupStatus string // None, Scheduled, Completed
	Owner          string
	Interested     bool
	CreatedDate    time.Time // asignada una sola vez al crear
	ModifiedDate   time.Time // se actualiza en cada mutación
}
