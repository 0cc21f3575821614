package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// PickingFilter filtros de listado de pickings.
type PickingFilter struct {
	Status          string
	OperationTypeID string
	Search          string // busca en referencia y partner
	Limit           int
	Offset          int
}

// PickingRepository puerto de persistencia para cabeceras de picking.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar las
// transiciones de estado concurrentes sobre el mismo picking.
type PickingRepository interface {
	Create(picking *entity.Picking) error
	GetByID(id string) (*entity.Picking, error)
	GetForUpdate(id string) (*entity.Picking, error)
	Update(picking *entity.Picking) error
	Delete(id string) error
	List(filter PickingFilter) ([]*entity.Picking, error)
}
