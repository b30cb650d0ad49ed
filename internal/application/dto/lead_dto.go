package dto

import "time"

// LeadRequest entrada para crear o actualizar un lead (sobrescritura completa).
// status y followup_status no se validan contra la enumeración en estas rutas;
// solo el bulk update aplica la allow-list.
type LeadRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Mobile         string `json:"mobile" validate:"required"`
	Status         string `json:"status"`
	FollowupStatus string `json:"followup_status"`
	Owner          string `json:"owner"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile"`
	Status         string    `json:"status"`
	FollowupStatus string    `json:"followup_status"`
	Owner          string    `json:"owner"`
	Interested     bool      `json:"interested"`
	CreatedDate    time.Time `json:"created_date"`
	ModifiedDate   time.Time `json:"modified_date"`
}

// CreateLeadResponse salida del alta de un lead.
type CreateLeadResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// BulkUpdateRequest entrada para la actualización masiva de un campo.
type BulkUpdateRequest struct {
	IDs   []int64 `json:"ids" validate:"required,min=1"`
	Field string  `json:"field" validate:"required,oneof=status followup_status owner"`
	Value string  `json:"value" validate:"required"`
}

// BulkUpdateResponse salida con la cantidad de filas afectadas.
type BulkUpdateResponse struct {
	Count   int64  `json:"count"`
	Message string `json:"message"`
}

// InterestRequest entrada para marcar o desmarcar interés de un lead.
// Los nombres camelCase vienen del contrato con la SPA.
type InterestRequest struct {
	LeadID     int64 `json:"leadId" validate:"required"`
	Interested bool  `json:"interested"`
}

// InterestResponse salida del toggle de interés.
type InterestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
