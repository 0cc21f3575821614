package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Search     string // busca en SKU, nombre y código de barras (sin acentos)
	CategoryID string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(filter ProductFilter) ([]*entity.Product, error)
	// ReferencedInHistory indica si el producto aparece en movimientos históricos;
	// en ese caso su SKU es inmutable.
	ReferencedInHistory(id string) (bool, error)
}
