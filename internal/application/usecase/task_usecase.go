package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TaskUseCase casos de uso CRUD para tareas de almacén.
type TaskUseCase struct {
	repo        repository.TaskRepository
	pickingRepo repository.PickingRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, pickingRepo repository.PickingRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, pickingRepo: pickingRepo}
}

func validTaskStatus(s string) bool {
	switch s {
	case entity.TaskPending, entity.TaskInProgress, entity.TaskCompleted, entity.TaskCancelled:
		return true
	}
	return false
}

func validTaskPriority(s string) bool {
	switch s {
	case entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh, entity.PriorityUrgent:
		return true
	}
	return false
}

// Create crea una tarea nueva, opcionalmente ligada a un picking existente.
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !validTaskPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	if in.PickingID != "" {
		picking, err := uc.pickingRepo.GetByID(in.PickingID)
		if err != nil {
			return nil, err
		}
		if picking == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		PickingID:   in.PickingID,
		Status:      entity.TaskPending,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID obtiene una tarea por ID, o nil si no existe.
func (uc *TaskUseCase) GetByID(id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	return toTaskResponse(task), nil
}

// Update actualiza una tarea.
func (uc *TaskUseCase) Update(id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !validTaskStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		task.Status = *in.Status
	}
	if in.Priority != nil {
		if !validTaskPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		task.Priority = *in.Priority
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.AssignedTo != nil {
		task.AssignedTo = *in.AssignedTo
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina una tarea por ID.
func (uc *TaskUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// MyTasks lista las tareas asignadas a un usuario.
func (uc *TaskUseCase) MyTasks(assignedTo string, limit, offset int) (*dto.TaskListResponse, error) {
	return uc.List(repository.TaskFilter{AssignedTo: assignedTo, Limit: limit, Offset: offset})
}

// Complete marca una tarea como completada. Es idempotente sobre tareas ya
// completadas; las canceladas no se pueden completar.
func (uc *TaskUseCase) Complete(id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if task.Status == entity.TaskCancelled {
		return nil, domain.ErrConflict
	}
	if task.Status != entity.TaskCompleted {
		task.Status = entity.TaskCompleted
		task.UpdatedAt = time.Now()
		if err := uc.repo.Update(task); err != nil {
			return nil, err
		}
	}
	return toTaskResponse(task), nil
}

// List lista tareas con filtros y paginación.
func (uc *TaskUseCase) List(filter repository.TaskFilter) (*dto.TaskListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.TaskListResponse{
		Items: make([]dto.TaskResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, t := range list {
		resp.Items = append(resp.Items, *toTaskResponse(t))
	}
	return resp, nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		PickingID:   t.PickingID,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
