package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios (login y atribución).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
