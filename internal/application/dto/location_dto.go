package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ParentID  string `json:"parent_id,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
	UsageType string `json:"usage_type,omitempty"` // por defecto "internal"
}

// UpdateLocationRequest entrada para actualizar una ubicación.
type UpdateLocationRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	ParentID  *string `json:"parent_id"`
	Barcode   *string `json:"barcode"`
	UsageType *string `json:"usage_type"`
	IsActive  *bool   `json:"is_active"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	Barcode   string    `json:"barcode,omitempty"`
	UsageType string    `json:"usage_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse lista paginada de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
