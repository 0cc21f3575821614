package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func (r *fakeTaskRepo) Create(t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	return r.tasks[id], nil
}

func (r *fakeTaskRepo) Update(t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) Delete(id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) List(filter repository.TaskFilter) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type fakePickingRepo struct {
	pickings map[string]*entity.Picking
}

func (r *fakePickingRepo) Create(p *entity.Picking) error               { r.pickings[p.ID] = p; return nil }
func (r *fakePickingRepo) GetByID(id string) (*entity.Picking, error)   { return r.pickings[id], nil }
func (r *fakePickingRepo) GetForUpdate(id string) (*entity.Picking, error) {
	return r.pickings[id], nil
}
func (r *fakePickingRepo) Update(p *entity.Picking) error { r.pickings[p.ID] = p; return nil }
func (r *fakePickingRepo) Delete(id string) error         { delete(r.pickings, id); return nil }
func (r *fakePickingRepo) List(repository.PickingFilter) ([]*entity.Picking, error) {
	return nil, nil
}

func newTaskFixture() (*usecase.TaskUseCase, *fakeTaskRepo) {
	taskRepo := &fakeTaskRepo{tasks: make(map[string]*entity.Task)}
	pickingRepo := &fakePickingRepo{pickings: map[string]*entity.Picking{
		"pick-1": {ID: "pick-1", Reference: "IN00001", Status: entity.StatusDraft},
	}}
	return usecase.NewTaskUseCase(taskRepo, pickingRepo), taskRepo
}

func TestTaskCreate_Defaults(t *testing.T) {
	uc, _ := newTaskFixture()

	got, err := uc.Create(dto.CreateTaskRequest{Title: "Contar estantería A"})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskPending, got.Status, "toda tarea nace pendiente")
	assert.Equal(t, entity.PriorityMedium, got.Priority, "prioridad por defecto")
}

func TestTaskCreate_PickingInexistente(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.Create(dto.CreateTaskRequest{Title: "Preparar envío", PickingID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskCreate_PrioridadInvalida(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.Create(dto.CreateTaskRequest{Title: "x", Priority: "altísima"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskComplete(t *testing.T) {
	uc, _ := newTaskFixture()
	created, err := uc.Create(dto.CreateTaskRequest{Title: "Recepción lote 42", PickingID: "pick-1"})
	require.NoError(t, err)

	got, err := uc.Complete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskCompleted, got.Status)

	// Completar dos veces es idempotente.
	got, err = uc.Complete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskCompleted, got.Status)
}

func TestTaskComplete_CanceladaRechazada(t *testing.T) {
	uc, repo := newTaskFixture()
	created, err := uc.Create(dto.CreateTaskRequest{Title: "obsoleta"})
	require.NoError(t, err)
	repo.tasks[created.ID].Status = entity.TaskCancelled

	_, err = uc.Complete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMyTasks_FiltraPorAsignado(t *testing.T) {
	uc, _ := newTaskFixture()
	_, err := uc.Create(dto.CreateTaskRequest{Title: "mía", AssignedTo: "user-1"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateTaskRequest{Title: "ajena", AssignedTo: "user-2"})
	require.NoError(t, err)

	got, err := uc.MyTasks("user-1", 50, 0)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "mía", got.Items[0].Title)
}
