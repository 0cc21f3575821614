package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveHistoryResponse salida de un registro del historial de auditoría.
type MoveHistoryResponse struct {
	ID                    string           `json:"id"`
	Timestamp             time.Time        `json:"timestamp"`
	UserID                string           `json:"user_id,omitempty"`
	ActionType            string           `json:"action_type"`
	PickingID             string           `json:"picking_id,omitempty"`
	ProductID             string           `json:"product_id,omitempty"`
	Quantity              *decimal.Decimal `json:"quantity,omitempty"`
	SourceLocationID      string           `json:"source_location_id,omitempty"`
	DestinationLocationID string           `json:"destination_location_id,omitempty"`
	OldStatus             string           `json:"old_status,omitempty"`
	NewStatus             string           `json:"new_status,omitempty"`
	Notes                 string           `json:"notes,omitempty"`
}
