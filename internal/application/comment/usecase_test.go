package comment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futurestec/crm-leads-api/internal/application/comment"
	"github.com/futurestec/crm-leads-api/internal/domain"
	"github.com/futurestec/crm-leads-api/internal/domain/entity"
)

// fakeCommentRepo repositorio en memoria; resuelve el JOIN del autor con una
// tabla fija de usuarios, como hace el adaptador PostgreSQL.
type fakeCommentRepo struct {
	comments map[int64]*entity.Comment
	users    map[int64]*entity.User
	nextID   int64
}

func newFakeCommentRepo(users map[int64]*entity.User) *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*entity.Comment{}, users: users, nextID: 1}
}

func (r *fakeCommentRepo) ListByLead(leadID int64) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.LeadID == leadID {
			out = append(out, r.withAuthor(c))
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Create(c *entity.Comment) (int64, error) {
	cp := *c
	cp.ID = r.nextID
	r.comments[cp.ID] = &cp
	r.nextID++
	return cp.ID, nil
}

func (r *fakeCommentRepo) GetByID(id int64) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	return r.withAuthor(c), nil
}

func (r *fakeCommentRepo) withAuthor(c *entity.Comment) *entity.Comment {
	cp := *c
	if u, ok := r.users[c.UserID]; ok {
		cp.UserName = u.Username
		cp.FullName = u.FullName
	}
	return &cp
}

// fakeLeadLookup implementa solo lo que el caso de uso consulta del puerto de leads.
type fakeLeadLookup struct {
	existing map[int64]bool
}

func (f *fakeLeadLookup) List() ([]*entity.Lead, error)           { return nil, nil }
func (f *fakeLeadLookup) Create(*entity.Lead) (int64, error)      { return 0, nil }
func (f *fakeLeadLookup) Update(*entity.Lead) error               { return nil }
func (f *fakeLeadLookup) Delete(int64) error                      { return nil }
func (f *fakeLeadLookup) SetInterested(int64, bool) error         { return nil }
func (f *fakeLeadLookup) BulkUpdate([]int64, string, string) (int64, error) {
	return 0, nil
}
func (f *fakeLeadLookup) GetByID(id int64) (*entity.Lead, error) {
	if !f.existing[id] {
		return nil, nil
	}
	return &entity.Lead{ID: id, Name: "Ana"}, nil
}

func newUseCase() (*comment.CommentUseCase, *fakeCommentRepo) {
	users := map[int64]*entity.User{
		7: {ID: 7, Username: "admin", FullName: "Administrator"},
	}
	repo := newFakeCommentRepo(users)
	leads := &fakeLeadLookup{existing: map[int64]bool{1: true}}
	return comment.NewCommentUseCase(repo, leads), repo
}

func TestAdd_DevuelveFilaConAutor(t *testing.T) {
	uc, _ := newUseCase()

	created, err := uc.Add(1, 7, "llamar el lunes")
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.LeadID)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, "llamar el lunes", created.Content)
	// La respuesta es la fila releída con el JOIN, no el eco del insert.
	assert.Equal(t, "admin", created.UserName)
	assert.Equal(t, "Administrator", created.FullName)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestAdd_LeadInexistente_NoCreaFila(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Add(99, 7, "contenido")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.comments)
}

func TestAdd_ContenidoVacio(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Add(1, 7, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.comments)
}

func TestListForLead_LeadSinComentarios(t *testing.T) {
	uc, _ := newUseCase()

	list, err := uc.ListForLead(1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListForLead_DevuelveComentariosDelLead(t *testing.T) {
	uc, repo := newUseCase()

	_, err := repo.Create(&entity.Comment{LeadID: 1, UserID: 7, Content: "uno", CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = repo.Create(&entity.Comment{LeadID: 2, UserID: 7, Content: "otro lead", CreatedAt: time.Now()})
	require.NoError(t, err)

	list, err := uc.ListForLead(1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "uno", list[0].Content)
	assert.Equal(t, "admin", list[0].UserName)
}
