package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest entrada para actualizar la configuración singleton.
type UpdateSettingsRequest struct {
	LowStockThreshold         *decimal.Decimal `json:"low_stock_threshold"`
	DefaultReceiptLocationID  *string          `json:"default_receipt_location_id"`
	DefaultDeliveryLocationID *string          `json:"default_delivery_location_id"`
	DefaultAdjustmentLocID    *string          `json:"default_adjustment_location_id"`
}

// SettingsResponse salida de la configuración del almacén.
type SettingsResponse struct {
	LowStockThreshold         decimal.Decimal `json:"low_stock_threshold"`
	DefaultReceiptLocationID  string          `json:"default_receipt_location_id,omitempty"`
	DefaultDeliveryLocationID string          `json:"default_delivery_location_id,omitempty"`
	DefaultAdjustmentLocID    string          `json:"default_adjustment_location_id,omitempty"`
	UpdatedAt                 time.Time       `json:"updated_at"`
	UpdatedBy                 string          `json:"updated_by,omitempty"`
}
