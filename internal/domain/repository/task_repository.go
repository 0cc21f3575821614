package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// TaskFilter filtros de listado de tareas.
type TaskFilter struct {
	Status     string
	Priority   string
	AssignedTo string
	Limit      int
	Offset     int
}

// TaskRepository puerto de persistencia para tareas de almacén.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id string) error
	List(filter TaskFilter) ([]*entity.Task, error)
}
