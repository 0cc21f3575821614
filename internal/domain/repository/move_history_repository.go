package repository

import (
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// MoveHistoryFilter filtros de consulta del historial.
type MoveHistoryFilter struct {
	ActionType string
	PickingID  string
	ProductID  string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// MoveHistoryRepository puerto del log de auditoría. Solo inserta y lista:
// no existe actualización ni borrado (append-only).
type MoveHistoryRepository interface {
	Create(record *entity.MoveHistory) error
	List(filter MoveHistoryFilter) ([]*entity.MoveHistory, error)
}
