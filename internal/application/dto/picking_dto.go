package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePickingRequest entrada para crear un picking en draft. Si no se indican
// ubicaciones, se resuelven desde el tipo de operación y, en última instancia,
// desde la configuración del almacén.
type CreatePickingRequest struct {
	Partner               string    `json:"partner"`
	OperationTypeID       string    `json:"operation_type_id" validate:"required"`
	SourceLocationID      string    `json:"source_location_id,omitempty"`
	DestinationLocationID string    `json:"destination_location_id,omitempty"`
	ScheduledDate         time.Time `json:"scheduled_date"`
	Notes                 string    `json:"notes"`
}

// UpdatePickingRequest entrada para actualizar la cabecera (solo en draft).
type UpdatePickingRequest struct {
	Partner               *string    `json:"partner"`
	SourceLocationID      *string    `json:"source_location_id"`
	DestinationLocationID *string    `json:"destination_location_id"`
	ScheduledDate         *time.Time `json:"scheduled_date"`
	Notes                 *string    `json:"notes"`
}

// AddStockMoveRequest entrada para agregar una línea a un picking en draft.
// Origen/destino son opcionales: se heredan de la cabecera si se omiten.
type AddStockMoveRequest struct {
	ProductID             string          `json:"product_id" validate:"required"`
	Quantity              decimal.Decimal `json:"quantity" validate:"required"`
	SourceLocationID      string          `json:"source_location_id,omitempty"`
	DestinationLocationID string          `json:"destination_location_id,omitempty"`
	Notes                 string          `json:"notes"`
}

// StockMoveResponse salida de una línea.
type StockMoveResponse struct {
	ID                    string          `json:"id"`
	PickingID             string          `json:"picking_id"`
	ProductID             string          `json:"product_id"`
	Quantity              decimal.Decimal `json:"quantity"`
	SourceLocationID      string          `json:"source_location_id"`
	DestinationLocationID string          `json:"destination_location_id"`
	Status                string          `json:"status"`
	Notes                 string          `json:"notes,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// PickingResponse salida de un picking con sus líneas en orden de inserción.
type PickingResponse struct {
	ID                    string              `json:"id"`
	Reference             string              `json:"reference"`
	Partner               string              `json:"partner,omitempty"`
	OperationTypeID       string              `json:"operation_type_id"`
	SourceLocationID      string              `json:"source_location_id"`
	DestinationLocationID string              `json:"destination_location_id"`
	Status                string              `json:"status"`
	ScheduledDate         time.Time           `json:"scheduled_date"`
	CompletionDate        *time.Time          `json:"completion_date,omitempty"`
	Notes                 string              `json:"notes,omitempty"`
	CreatedBy             string              `json:"created_by,omitempty"`
	StockMoves            []StockMoveResponse `json:"stock_moves"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// PickingListResponse lista paginada de pickings (sin líneas).
type PickingListResponse struct {
	Items []PickingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
