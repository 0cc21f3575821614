package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQuantResponse salida de una cantidad por (producto, ubicación).
type StockQuantResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	LocationID        string          `json:"location_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReservedQuantity  decimal.Decimal `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AvailabilityResponse cantidad disponible de un producto en una ubicación
// concreta (cero si no hay registro de stock).
type AvailabilityResponse struct {
	ProductID         string          `json:"product_id"`
	LocationID        string          `json:"location_id"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
}

// AdjustStockRequest entrada para un ajuste manual de inventario. Delta con signo:
// positivo suma, negativo resta. Si location_id se omite, se usa la ubicación de
// ajustes por defecto de la configuración del almacén.
type AdjustStockRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	LocationID string          `json:"location_id,omitempty"`
	Delta      decimal.Decimal `json:"delta" validate:"required"`
	Notes      string          `json:"notes"`
}
