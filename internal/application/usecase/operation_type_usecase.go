package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// OperationTypeUseCase casos de uso CRUD para tipos de operación.
type OperationTypeUseCase struct {
	repo         repository.OperationTypeRepository
	locationRepo repository.LocationRepository
}

// NewOperationTypeUseCase construye el caso de uso.
func NewOperationTypeUseCase(repo repository.OperationTypeRepository, locationRepo repository.LocationRepository) *OperationTypeUseCase {
	return &OperationTypeUseCase{repo: repo, locationRepo: locationRepo}
}

// Create crea un tipo de operación nuevo.
func (uc *OperationTypeUseCase) Create(in dto.CreateOperationTypeRequest) (*dto.OperationTypeResponse, error) {
	if !entity.ValidOperationCode(in.Code) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkLocations(in.DefaultSourceLocationID, in.DefaultDestinationLocID); err != nil {
		return nil, err
	}
	now := time.Now()
	opType := &entity.OperationType{
		ID:                      uuid.New().String(),
		Name:                    in.Name,
		Code:                    in.Code,
		SequencePrefix:          in.SequencePrefix,
		Description:             in.Description,
		DefaultSourceLocationID: in.DefaultSourceLocationID,
		DefaultDestinationLocID: in.DefaultDestinationLocID,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repo.Create(opType); err != nil {
		return nil, err
	}
	return toOperationTypeResponse(opType), nil
}

// GetByID obtiene un tipo de operación por ID, o nil si no existe.
func (uc *OperationTypeUseCase) GetByID(id string) (*dto.OperationTypeResponse, error) {
	opType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if opType == nil {
		return nil, nil
	}
	return toOperationTypeResponse(opType), nil
}

// Update actualiza un tipo de operación.
func (uc *OperationTypeUseCase) Update(id string, in dto.UpdateOperationTypeRequest) (*dto.OperationTypeResponse, error) {
	opType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if opType == nil {
		return nil, nil
	}
	if in.Code != nil {
		if !entity.ValidOperationCode(*in.Code) {
			return nil, domain.ErrInvalidInput
		}
		opType.Code = *in.Code
	}
	if in.Name != nil {
		opType.Name = *in.Name
	}
	if in.SequencePrefix != nil {
		opType.SequencePrefix = *in.SequencePrefix
	}
	if in.Description != nil {
		opType.Description = *in.Description
	}
	if in.DefaultSourceLocationID != nil {
		opType.DefaultSourceLocationID = *in.DefaultSourceLocationID
	}
	if in.DefaultDestinationLocID != nil {
		opType.DefaultDestinationLocID = *in.DefaultDestinationLocID
	}
	if err := uc.checkLocations(opType.DefaultSourceLocationID, opType.DefaultDestinationLocID); err != nil {
		return nil, err
	}
	opType.UpdatedAt = time.Now()
	if err := uc.repo.Update(opType); err != nil {
		return nil, err
	}
	return toOperationTypeResponse(opType), nil
}

// Delete elimina un tipo de operación por ID.
func (uc *OperationTypeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista tipos de operación, opcionalmente filtrados por código.
func (uc *OperationTypeUseCase) List(code string, limit, offset int) (*dto.OperationTypeListResponse, error) {
	list, err := uc.repo.List(code, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.OperationTypeListResponse{
		Items: make([]dto.OperationTypeResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, ot := range list {
		resp.Items = append(resp.Items, *toOperationTypeResponse(ot))
	}
	return resp, nil
}

// checkLocations verifica que las ubicaciones por defecto existan cuando se indican.
func (uc *OperationTypeUseCase) checkLocations(ids ...string) error {
	for _, id := range ids {
		if id == "" {
			continue
		}
		location, err := uc.locationRepo.GetByID(id)
		if err != nil {
			return err
		}
		if location == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func toOperationTypeResponse(ot *entity.OperationType) *dto.OperationTypeResponse {
	return &dto.OperationTypeResponse{
		ID:                      ot.ID,
		Name:                    ot.Name,
		Code:                    ot.Code,
		SequencePrefix:          ot.SequencePrefix,
		Description:             ot.Description,
		DefaultSourceLocationID: ot.DefaultSourceLocationID,
		DefaultDestinationLocID: ot.DefaultDestinationLocID,
		CreatedAt:               ot.CreatedAt,
		UpdatedAt:               ot.UpdatedAt,
	}
}
