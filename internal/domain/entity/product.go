package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del inventario. La identidad (SKU) es inmutable una vez que el
// producto aparece en movimientos históricos.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	CategoryID  string
	Cost        decimal.Decimal
	Price       decimal.Decimal
	Barcode     string
	UOM         string // unidad de medida: kg, pcs, docena, litros...
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
