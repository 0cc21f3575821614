package usecase

import (
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// StockMoveUseCase consulta de solo lectura de líneas de picking. El alta y la
// baja de líneas pasan siempre por el agregado del picking.
type StockMoveUseCase struct {
	repo repository.StockMoveRepository
}

// NewStockMoveUseCase construye el caso de uso.
func NewStockMoveUseCase(repo repository.StockMoveRepository) *StockMoveUseCase {
	return &StockMoveUseCase{repo: repo}
}

// GetByID obtiene una línea por ID, o nil si no existe.
func (uc *StockMoveUseCase) GetByID(id string) (*dto.StockMoveResponse, error) {
	move, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if move == nil {
		return nil, nil
	}
	out := toMoveResponse(move)
	return &out, nil
}

// List lista líneas con filtros y paginación.
func (uc *StockMoveUseCase) List(filter repository.StockMoveFilter) ([]dto.StockMoveResponse, error) {
	moves, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, toMoveResponse(m))
	}
	return out, nil
}

func toMoveResponse(m *entity.StockMove) dto.StockMoveResponse {
	return dto.StockMoveResponse{
		ID:                    m.ID,
		PickingID:             m.PickingID,
		ProductID:             m.ProductID,
		Quantity:              m.Quantity,
		SourceLocationID:      m.SourceLocationID,
		DestinationLocationID: m.DestinationLocationID,
		Status:                m.Status,
		Notes:                 m.Notes,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
