package lead

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/futurestec/crm-leads-api/internal/application/dto"
	"github.com/futurestec/crm-leads-api/internal/domain"
	"github.com/futurestec/crm-leads-api/internal/domain/entity"
	"github.com/futurestec/crm-leads-api/internal/domain/repository"
)

// LeadUseCase ciclo de vida del lead: CRUD, actualización masiva y toggle de interés.
type LeadUseCase struct {
	repo     repository.LeadRepository
	notifier InterestNotifier
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, notifier InterestNotifier) *LeadUseCase {
	return &LeadUseCase{repo: repo, notifier: notifier}
}

// List devuelve todos los leads, más recientes primero.
func (uc *LeadUseCase) List() ([]*dto.LeadResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLeadResponse(l))
	}
	return out, nil
}

// Get devuelve un lead por ID o domain.ErrNotFound.
func (uc *LeadUseCase) Get(id int64) (*dto.LeadResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return toLeadResponse(l), nil
}

// Create da de alta un lead con created_date = modified_date = now.
// name, email y mobile son obligatorios; status y followup_status reciben
// valores por defecto cuando vienen vacíos pero no se validan contra la enumeración.
func (uc *LeadUseCase) Create(in dto.LeadRequest) (int64, error) {
	if in.Name == "" || in.Email == "" || in.Mobile == "" {
		return 0, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusNew
	}
	followup := in.FollowupStatus
	if followup == "" {
		followup = entity.FollowupNone
	}
	now := time.Now()
	l := &entity.Lead{
		Name:           in.Name,
		Email:          in.Email,
		Mobile:         in.Mobile,
		Status:         status,
		FollowupStatus: followup,
		Owner:          in.Owner,
		Interested:     false,
		CreatedDate:    now,
		ModifiedDate:   now,
	}
	return uc.repo.Create(l)
}

// Update sobrescribe los campos mutables y modified_date. No verifica existencia:
// un ID ausente también responde éxito (cero filas afectadas).
func (uc *LeadUseCase) Update(id int64, in dto.LeadRequest) error {
	l := &entity.Lead{
		ID:             id,
		Name:           in.Name,
		Email:          in.Email,
		Mobile:         in.Mobile,
		Status:         in.Status,
		FollowupStatus: in.FollowupStatus,
		Owner:          in.Owner,
		ModifiedDate:   time.Now(),
	}
	return uc.repo.Update(l)
}

// BulkUpdate aplica un campo/valor a todos los IDs referenciados. Solo los
// campos de la allow-list (status, followup_status, owner) son escribibles;
// ids y value no pueden venir vacíos. Devuelve las filas afectadas.
func (uc *LeadUseCase) BulkUpdate(in dto.BulkUpdateRequest) (int64, error) {
	if len(in.IDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	if in.Field == "" || in.Value == "" {
		return 0, domain.ErrInvalidInput
	}
	if !entity.IsBulkEditable(in.Field) {
		return 0, domain.ErrBulkFieldNotAllowed
	}
	return uc.repo.BulkUpdate(in.IDs, in.Field, in.Value)
}

// Delete elimina un lead sin verificar existencia.
func (uc *LeadUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// SetInterest persiste el flag de interés y, en la transición a true, envía la
// notificación con un snapshot del lead. El flag queda confirmado antes del
// envío: si el notificador falla se devuelve domain.ErrNotifierFailed pero el
// interés ya está persistido.
func (uc *LeadUseCase) SetInterest(id int64, interested bool) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.SetInterested(id, interested); err != nil {
		return err
	}
	if !interested {
		return nil
	}
	l.Interested = true
	if err := uc.notifier.NotifyInterested(l); err != nil {
		log.Error().Err(err).Int64("lead_id", id).Msg("notificación de interés fallida")
		return domain.ErrNotifierFailed
	}
	return nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:             l.ID,
		Name:           l.Name,
		Email:          l.Email,
		Mobile:         l.Mobile,
		Status:         l.Status,
		FollowupStatus: l.FollowupStatus,
		Owner:          l.Owner,
		Interested:     l.Interested,
		CreatedDate:    l.CreatedDate,
		ModifiedDate:   l.ModifiedDate,
	}
}
