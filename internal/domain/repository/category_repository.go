package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Category, error)
	ListChildren(parentID string) ([]*entity.Category, error)
}
