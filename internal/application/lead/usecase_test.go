package lead_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futurestec/crm-leads-api/internal/application/dto"
	"github.com/futurestec/crm-leads-api/internal/application/lead"
	"github.com/futurestec/crm-leads-api/internal/domain"
	"github.com/futurestec/crm-leads-api/internal/domain/entity"
)

// fakeLeadRepo repositorio en memoria que imita la semántica del adaptador
// PostgreSQL: Update/Delete silenciosos, BulkUpdate cuenta filas afectadas.
type fakeLeadRepo struct {
	leads  map[int64]*entity.Lead
	nextID int64
}

func newFakeLeadRepo(seed ...*entity.Lead) *fakeLeadRepo {
	r := &fakeLeadRepo{leads: map[int64]*entity.Lead{}, nextID: 1}
	for _, l := range seed {
		cp := *l
		cp.ID = r.nextID
		r.leads[r.nextID] = &cp
		r.nextID++
	}
	return r
}

func (r *fakeLeadRepo) List() ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLeadRepo) GetByID(id int64) (*entity.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) Create(l *entity.Lead) (int64, error) {
	cp := *l
	cp.ID = r.nextID
	r.leads[cp.ID] = &cp
	r.nextID++
	return cp.ID, nil
}

func (r *fakeLeadRepo) Update(l *entity.Lead) error {
	if existing, ok := r.leads[l.ID]; ok {
		created := existing.CreatedDate
		cp := *l
		cp.CreatedDate = created
		r.leads[l.ID] = &cp
	}
	return nil
}

func (r *fakeLeadRepo) BulkUpdate(ids []int64, field, value string) (int64, error) {
	var count int64
	for _, id := range ids {
		l, ok := r.leads[id]
		if !ok {
			continue
		}
		switch field {
		case "status":
			l.Status = value
		case "followup_status":
			l.FollowupStatus = value
		case "owner":
			l.Owner = value
		default:
			return 0, domain.ErrBulkFieldNotAllowed
		}
		count++
	}
	return count, nil
}

func (r *fakeLeadRepo) Delete(id int64) error {
	delete(r.leads, id)
	return nil
}

func (r *fakeLeadRepo) SetInterested(id int64, interested bool) error {
	if l, ok := r.leads[id]; ok {
		l.Interested = interested
	}
	return nil
}

// fakeNotifier registra los envíos y puede simular un fallo SMTP.
type fakeNotifier struct {
	sent []*entity.Lead
	fail bool
}

func (n *fakeNotifier) NotifyInterested(l *entity.Lead) error {
	if n.fail {
		return errors.New("smtp: connection refused")
	}
	n.sent = append(n.sent, l)
	return nil
}

func seedLead(name, owner string) *entity.Lead {
	return &entity.Lead{
		Name:           name,
		Email:          name + "@example.com",
		Mobile:         "3000000000",
		Status:         entity.StatusNew,
		FollowupStatus: entity.FollowupNone,
		Owner:          owner,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaFechasIguales(t *testing.T) {
	repo := newFakeLeadRepo()
	uc := lead.NewLeadUseCase(repo, &fakeNotifier{})

	id, err := uc.Create(dto.LeadRequest{Name: "Ana", Email: "ana@example.com", Mobile: "3001112233", Owner: "sarah"})
	require.NoError(t, err)

	got, err := uc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "3001112233", got.Mobile)
	assert.Equal(t, "sarah", got.Owner)
	assert.False(t, got.Interested)
	// created_date y modified_date son asignadas por el servidor e iguales al crear.
	assert.Equal(t, got.CreatedDate, got.ModifiedDate)
}

func TestCreate_DefaultsDeEstado(t *testing.T) {
	repo := newFakeLeadRepo()
	uc := lead.NewLeadUseCase(repo, &fakeNotifier{})

	id, err := uc.Create(dto.LeadRequest{Name: "Ana", Email: "ana@example.com", Mobile: "300"})
	require.NoError(t, err)

	got, err := uc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNew, got.Status)
	assert.Equal(t, entity.FollowupNone, got.FollowupStatus)
}

func TestCreate_CamposRequeridos(t *testing.T) {
	uc := lead.NewLeadUseCase(newFakeLeadRepo(), &fakeNotifier{})

	_, err := uc.Create(dto.LeadRequest{Name: "Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_NoExiste(t *testing.T) {
	uc := lead.NewLeadUseCase(newFakeLeadRepo(), &fakeNotifier{})

	_, err := uc.Get(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_LuegoGet_NotFound(t *testing.T) {
	repo := newFakeLeadRepo(seedLead("Ana", "sarah"))
	uc := lead.NewLeadUseCase(repo, &fakeNotifier{})

	require.NoError(t, uc.Delete(1))
	_, err := uc.Get(1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update no verifica existencia: un ID ausente también responde éxito.
func TestUpdate_IDAusente_EsSilencioso(t *testing.T) {
	uc := lead.NewLeadUseCase(newFakeLeadRepo(), &fakeNotifier{})

	err := uc.Update(42, dto.LeadRequest{Name: "X", Email: "x@example.com", Mobile: "300"})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkUpdate — allow-list
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkUpdate_OwnerEnTresLeads(t *testing.T) {
	repo := newFakeLeadRepo(seedLead("a", "x"), seedLead("b", "y"), seedLead("c", "z"))
	uc := lead.NewLeadUseCase(repo, &fakeNotifier{})

	count, err := uc.BulkUpdate(dto.BulkUpdateRequest{IDs: []int64{1, 2, 3}, Field: "owner", Value: "sarah"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	for _, id := range []int64{1, 2, 3} {
		got, err := uc.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "sarah", got.Owner)
	}
}

func TestBulkUpdate_SoloFilasReferenciadas(t *testing.T) {
	repo := newFakeLeadRepo(seedLead("a", "x"), seedLead("b", "y"))
	uc := lead.NewLeadUseCase(repo, &fakeNotifier{})

	count, err := uc.BulkUpdate(dto.BulkUpdateRequest{IDs: []int64{1}, Field: "status", Value: entity.StatusContacted})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	untouched, err := uc.Get(2)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNew, untouched.Status)
}

func TestBulkUpdate_CampoFueraDeAllowList(t *testing.T) {
	repo := newFakeLeadRepo(seedLead("a", "x"))
	uc := lead.NewLeadUseCase(repo, &fakeNotifier{})

	_, err := uc.BulkUpdate(dto.BulkUpdateRequest{IDs: []int64{1}, Field: "password", Value: "x"})
	assert.ErrorIs(t, err, domain.ErrBulkFieldNotAllowed)

	// Ninguna fila debe mutar.
	got, err := uc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Owner)
	assert.Equal(t, entity.StatusNew, got.Status)
}

func TestBulkUpdate_Validaciones(t *testing.T) {
	uc := lead.NewLeadUseCase(newFakeLeadRepo(), &fakeNotifier{})

	_, err := uc.BulkUpdate(dto.BulkUpdateRequest{IDs: nil, Field: "owner", Value: "sarah"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ids vacíos")

	_, err = uc.BulkUpdate(dto.BulkUpdateRequest{IDs: []int64{1}, Field: "", Value: "sarah"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "field vacío")

	_, err = uc.BulkUpdate(dto.BulkUpdateRequest{IDs: []int64{1}, Field: "owner", Value: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "value vacío")
}

// ──────────────────────────────────────────────────────────────────────────────
// SetInterest — notificación
// ──────────────────────────────────────────────────────────────────────────────

func TestSetInterest_EnviaNotificacionAlMarcar(t *testing.T) {
	repo := newFakeLeadRepo(seedLead("Ana", "sarah"))
	notifier := &fakeNotifier{}
	uc := lead.NewLeadUseCase(repo, notifier)

	require.NoError(t, uc.SetInterest(1, true))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Ana", notifier.sent[0].Name)
	assert.True(t, notifier.sent[0].Interested)

	got, err := uc.Get(1)
	require.NoError(t, err)
	assert.True(t, got.Interested)
}

func TestSetInterest_DesmarcarNoNotifica(t *testing.T) {
	repo := newFakeLeadRepo(seedLead("Ana", "sarah"))
	notifier := &fakeNotifier{}
	uc := lead.NewLeadUseCase(repo, notifier)

	require.NoError(t, uc.SetInterest(1, false))
	assert.Empty(t, notifier.sent)
}

func TestSetInterest_LeadInexistente(t *testing.T) {
	uc := lead.NewLeadUseCase(newFakeLeadRepo(), &fakeNotifier{})

	err := uc.SetInterest(99, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El flag queda persistido aunque el envío falle: el error reporta solo la notificación.
func TestSetInterest_FalloDelNotificador_NoRevierteFlag(t *testing.T) {
	repo := newFakeLeadRepo(seedLead("Ana", "sarah"))
	uc := lead.NewLeadUseCase(repo, &fakeNotifier{fail: true})

	err := uc.SetInterest(1, true)
	assert.ErrorIs(t, err, domain.ErrNotifierFailed)

	got, err := uc.Get(1)
	require.NoError(t, err)
	assert.True(t, got.Interested)
}
