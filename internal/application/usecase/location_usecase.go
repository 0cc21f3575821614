package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo      repository.LocationRepository
	quantRepo repository.StockQuantRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, quantRepo repository.StockQuantRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, quantRepo: quantRepo}
}

// Create crea una ubicación nueva.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	usageType := in.UsageType
	if usageType == "" {
		usageType = entity.UsageInternal
	}
	if !entity.ValidUsageType(usageType) {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ParentID:  in.ParentID,
		Barcode:   in.Barcode,
		UsageType: usageType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID, o nil si no existe.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza una ubicación.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.UsageType != nil {
		if !entity.ValidUsageType(*in.UsageType) {
			return nil, domain.ErrInvalidInput
		}
		location.UsageType = *in.UsageType
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.ParentID != nil {
		location.ParentID = *in.ParentID
	}
	if in.Barcode != nil {
		location.Barcode = *in.Barcode
	}
	if in.IsActive != nil {
		location.IsActive = *in.IsActive
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Delete elimina una ubicación por ID.
func (uc *LocationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista ubicaciones con filtros y paginación.
func (uc *LocationUseCase) List(filter repository.LocationFilter) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.LocationListResponse{
		Items: make([]dto.LocationResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, l := range list {
		resp.Items = append(resp.Items, *toLocationResponse(l))
	}
	return resp, nil
}

// Children lista las ubicaciones hijas directas.
func (uc *LocationUseCase) Children(id string) ([]dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	children, err := uc.repo.ListChildren(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(children))
	for _, c := range children {
		out = append(out, *toLocationResponse(c))
	}
	return out, nil
}

// StockLevels devuelve los niveles de stock de todos los productos en la ubicación.
func (uc *LocationUseCase) StockLevels(id string) ([]dto.StockQuantResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	quants, err := uc.quantRepo.List(repository.StockQuantFilter{LocationID: id, Limit: 1000})
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockQuantResponse, 0, len(quants))
	for _, q := range quants {
		out = append(out, dto.StockQuantResponse{
			ID:                q.ID,
			ProductID:         q.ProductID,
			LocationID:        q.LocationID,
			Quantity:          q.Quantity,
			ReservedQuantity:  q.ReservedQuantity,
			AvailableQuantity: q.Available(),
			UpdatedAt:         q.UpdatedAt,
		})
	}
	return out, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		ParentID:  l.ParentID,
		Barcode:   l.Barcode,
		UsageType: l.UsageType,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
