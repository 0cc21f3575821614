package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQuant cantidad materializada de un producto en una ubicación.
// Única por (producto, ubicación); se crea perezosamente con el primer movimiento
// y nunca se elimina (las filas en cero persisten).
type StockQuant struct {
	ID               string
	ProductID        string
	LocationID       string
	Quantity         decimal.Decimal
	ReservedQuantity decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Available cantidad disponible: en mano menos reservada.
func (q *StockQuant) Available() decimal.Decimal {
	return q.Quantity.Sub(q.ReservedQuantity)
}
