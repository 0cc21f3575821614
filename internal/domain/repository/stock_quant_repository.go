package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// StockQuantFilter filtros de listado de quants.
type StockQuantFilter struct {
	ProductID  string
	LocationID string
	Limit      int
	Offset     int
}

// StockQuantRepository puerto de persistencia para cantidades por ubicación.
// El par check-then-decrement del ledger se serializa con GetForUpdate
// (SELECT FOR UPDATE) y ApplyDelta (upsert aditivo atómico).
type StockQuantRepository interface {
	Get(productID, locationID string) (*entity.StockQuant, error)
	// GetForUpdate bloquea la fila; si no existe, devuelve un quant en cero
	// (sin fila = sin stock, no es un error).
	GetForUpdate(productID, locationID string) (*entity.StockQuant, error)
	// ApplyDelta crea la fila con cantidad cero si no existe y aplica
	// quantity += delta de forma atómica. Devuelve el quant resultante.
	ApplyDelta(productID, locationID string, delta decimal.Decimal) (*entity.StockQuant, error)
	List(filter StockQuantFilter) ([]*entity.StockQuant, error)
	// LowStock: disponibles por debajo del umbral (solo filas con cantidad > 0).
	LowStock(threshold decimal.Decimal) ([]*entity.StockQuant, error)
	// OutOfStock: disponibles <= 0.
	OutOfStock() ([]*entity.StockQuant, error)
}
