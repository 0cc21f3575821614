package dto

import "time"

// CreateOperationTypeRequest entrada para crear un tipo de operación.
type CreateOperationTypeRequest struct {
	Name                     string `json:"name" validate:"required,min=1,max=100"`
	Code                     string `json:"code" validate:"required"`
	SequencePrefix           string `json:"sequence_prefix" validate:"required,min=1,max=10"`
	Description              string `json:"description"`
	DefaultSourceLocationID  string `json:"default_source_location_id,omitempty"`
	DefaultDestinationLocID  string `json:"default_destination_location_id,omitempty"`
}

// UpdateOperationTypeRequest entrada para actualizar un tipo de operación.
type UpdateOperationTypeRequest struct {
	Name                     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Code                     *string `json:"code"`
	SequencePrefix           *string `json:"sequence_prefix" validate:"omitempty,min=1,max=10"`
	Description              *string `json:"description"`
	DefaultSourceLocationID  *string `json:"default_source_location_id"`
	DefaultDestinationLocID  *string `json:"default_destination_location_id"`
}

// OperationTypeResponse salida de un tipo de operación.
type OperationTypeResponse struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	Code                     string    `json:"code"`
	SequencePrefix           string    `json:"sequence_prefix"`
	Description              string    `json:"description"`
	DefaultSourceLocationID  string    `json:"default_source_location_id,omitempty"`
	DefaultDestinationLocID  string    `json:"default_destination_location_id,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// OperationTypeListResponse lista paginada de tipos de operación.
type OperationTypeListResponse struct {
	Items []OperationTypeResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
