package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// SettingsRepository puerto de persistencia para la configuración singleton del
// almacén. Get crea la fila con valores por defecto si aún no existe.
type SettingsRepository interface {
	Get() (*entity.WarehouseSettings, error)
	Update(settings *entity.WarehouseSettings) error
}
