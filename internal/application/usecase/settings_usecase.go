package usecase

import (
	"time"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// SettingsUseCase casos de uso para la configuración singleton del almacén.
type SettingsUseCase struct {
	repo         repository.SettingsRepository
	locationRepo repository.LocationRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, locationRepo repository.LocationRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, locationRepo: locationRepo}
}

// Get devuelve la configuración, creándola con valores por defecto si no existe.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Update actualiza los campos indicados de la configuración. El umbral de stock
// bajo no puede ser negativo y las ubicaciones por defecto deben existir.
func (uc *SettingsUseCase) Update(actorID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if in.LowStockThreshold != nil {
		if in.LowStockThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		settings.LowStockThreshold = *in.LowStockThreshold
	}
	if in.DefaultReceiptLocationID != nil {
		if err := uc.checkLocation(*in.DefaultReceiptLocationID); err != nil {
			return nil, err
		}
		settings.DefaultReceiptLocationID = *in.DefaultReceiptLocationID
	}
	if in.DefaultDeliveryLocationID != nil {
		if err := uc.checkLocation(*in.DefaultDeliveryLocationID); err != nil {
			return nil, err
		}
		settings.DefaultDeliveryLocationID = *in.DefaultDeliveryLocationID
	}
	if in.DefaultAdjustmentLocID != nil {
		if err := uc.checkLocation(*in.DefaultAdjustmentLocID); err != nil {
			return nil, err
		}
		settings.DefaultAdjustmentLocID = *in.DefaultAdjustmentLocID
	}
	settings.UpdatedAt = time.Now()
	settings.UpdatedBy = actorID
	if err := uc.repo.Update(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (uc *SettingsUseCase) checkLocation(id string) error {
	if id == "" {
		return nil
	}
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toSettingsResponse(s *entity.WarehouseSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		LowStockThreshold:         s.LowStockThreshold,
		DefaultReceiptLocationID:  s.DefaultReceiptLocationID,
		DefaultDeliveryLocationID: s.DefaultDeliveryLocationID,
		DefaultAdjustmentLocID:    s.DefaultAdjustmentLocID,
		UpdatedAt:                 s.UpdatedAt,
		UpdatedBy:                 s.UpdatedBy,
	}
}
