package entity

import "time"

// Category categoría jerárquica para organizar productos (relación padre-hijo).
type Category struct {
	ID          string
	Name        string
	ParentID    string // vacío = categoría raíz
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
