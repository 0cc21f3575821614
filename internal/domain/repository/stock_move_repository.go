package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// StockMoveFilter filtros de listado de líneas.
type StockMoveFilter struct {
	PickingID string
	ProductID string
	Status    string
	Limit     int
	Offset    int
}

// StockMoveRepository puerto de persistencia para líneas de picking.
// ListByPicking devuelve las líneas en su orden de inserción, que es el orden
// en que el motor de validación las aplica.
type StockMoveRepository interface {
	Create(move *entity.StockMove) error
	GetByID(id string) (*entity.StockMove, error)
	ListByPicking(pickingID string) ([]*entity.StockMove, error)
	UpdateStatus(id, status string) error
	UpdateStatusByPicking(pickingID, status string) error
	Delete(id string) error
	List(filter StockMoveFilter) ([]*entity.StockMove, error)
}
