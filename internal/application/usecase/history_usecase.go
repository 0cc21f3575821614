package usecase

import (
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// HistoryUseCase consulta de solo lectura del log de auditoría.
type HistoryUseCase struct {
	repo repository.MoveHistoryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.MoveHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List lista registros del historial con filtros y paginación, del más reciente
// al más antiguo.
func (uc *HistoryUseCase) List(filter repository.MoveHistoryFilter) ([]dto.MoveHistoryResponse, error) {
	records, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MoveHistoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toHistoryResponse(r))
	}
	return out, nil
}

func toHistoryResponse(r *entity.MoveHistory) *dto.MoveHistoryResponse {
	return &dto.MoveHistoryResponse{
		ID:                    r.ID,
		Timestamp:             r.Timestamp,
		UserID:                r.UserID,
		ActionType:            r.ActionType,
		PickingID:             r.PickingID,
		ProductID:             r.ProductID,
		Quantity:              r.Quantity,
		SourceLocationID:      r.SourceLocationID,
		DestinationLocationID: r.DestinationLocationID,
		OldStatus:             r.OldStatus,
		NewStatus:             r.NewStatus,
		Notes:                 r.Notes,
	}
}
