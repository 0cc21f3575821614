package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseSettings configuración global del almacén: fila única (singleton).
// El core solo la lee para resolver ubicaciones por defecto y el umbral de stock
// bajo; solo el endpoint de settings la muta.
type WarehouseSettings struct {
	ID                        string
	LowStockThreshold         decimal.Decimal
	DefaultReceiptLocationID  string
	DefaultDeliveryLocationID string
	DefaultAdjustmentLocID    string
	UpdatedAt                 time.Time
	UpdatedBy                 string
}
