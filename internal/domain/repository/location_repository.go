package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// LocationFilter filtros de listado de ubicaciones.
type LocationFilter struct {
	Search     string
	UsageType  string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// LocationRepository puerto de persistencia para ubicaciones. GetByIDs sirve al
// motor de validación para resolver los tipos de uso de todas las ubicaciones
// tocadas por un picking en una sola consulta.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetByIDs(ids []string) (map[string]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id string) error
	List(filter LocationFilter) ([]*entity.Location, error)
	ListChildren(parentID string) ([]*entity.Location, error)
}
