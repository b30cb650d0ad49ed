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

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
type LeadRepo struct {
	pool *pgxpool.Pool
}

// NewLeadRepository construye el adaptador de persistencia para leads.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

const leadColumns = `id, name, email, mobile, status, followup_status, owner, interested, created_date, modified_date`

// List devuelve todos los leads ordenados por modified_date descendente (sin paginación).
func (r *LeadRepo) List() ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY modified_date DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := scanLead(rows, &l); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// GetByID obtiene un lead por ID. Devuelve (nil, nil) si no existe.
func (r *LeadRepo) GetByID(id int64) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	var l entity.Lead
	err := scanLead(r.pool.QueryRow(context.Background(), query, id), &l)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// Create persiste un nuevo lead y devuelve el ID asignado por la base.
func (r *LeadRepo) Create(lead *entity.Lead) (int64, error) {
	query := `
		INSERT INTO leads (name, email, mobile, status, followup_status, owner, interested, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		lead.Name, lead.Email, lead.Mobile, lead.Status, lead.FollowupStatus, lead.Owner,
		lead.Interested, lead.CreatedDate, lead.ModifiedDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert lead: %w", err)
	}
	return id, nil
}

// Update sobrescribe los campos mutables del lead. No verifica existencia:
// cero filas afectadas también es éxito y el caller no debe inferir existencia.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, email = $3, mobile = $4, status = $5, followup_status = $6, owner = $7, modified_date = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Email, lead.Mobile, lead.Status, lead.FollowupStatus, lead.Owner,
		lead.ModifiedDate,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// BulkUpdate escribe un único campo en todas las filas referenciadas en una sola
// sentencia. El nombre de columna se resuelve por switch sobre la allow-list:
// nunca se interpola texto del caller en el SQL.
func (r *LeadRepo) BulkUpdate(ids []int64, field, value string) (int64, error) {
	var column string
	switch field {
	case "status":
		column = "status"
	case "followup_status":
		column = "followup_status"
	case "owner":
		column = "owner"
	default:
		return 0, domain.ErrBulkFieldNotAllowed
	}
	query := `UPDATE leads SET ` + column + ` = $1, modified_date = now() WHERE id = ANY($2)`
	ct, err := r.pool.Exec(context.Background(), query, value, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk update leads: %w", err)
	}
	return ct.RowsAffected(), nil
}

// Delete elimina un lead por ID sin verificar existencia. Los comentarios
// dependientes caen por el ON DELETE CASCADE del esquema.
func (r *LeadRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// SetInterested actualiza el flag de interés y modified_date.
func (r *LeadRepo) SetInterested(id int64, interested bool) error {
	query := `UPDATE leads SET interested = $2, modified_date = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, interested)
	if err != nil {
		return fmt.Errorf("set interested: %w", err)
	}
	return nil
}

// scanLead escanea una fila de leads (pgx.Row y pgx.Rows comparten Scan).
func scanLead(row pgx.Row, l *entity.Lead) error {
	return row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Mobile, &l.Status, &l.FollowupStatus, &l.Owner,
		&l.Interested, &l.CreatedDate, &l.ModifiedDate,
	)
}
