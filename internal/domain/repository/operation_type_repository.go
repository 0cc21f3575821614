package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// OperationTypeRepository puerto de persistencia para tipos de operación.
type OperationTypeRepository interface {
	Create(opType *entity.OperationType) error
	GetByID(id string) (*entity.OperationType, error)
	Update(opType *entity.OperationType) error
	Delete(id string) error
	List(code string, limit, offset int) ([]*entity.OperationType, error)
}
