package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// Create crea un picking en draft. La referencia se genera dentro de la misma
// transacción que el insert (<prefijo><número de 5 dígitos>, ej. IN00042), de
// modo que la secuencia nunca se salta ni se duplica bajo concurrencia.
func (uc *PickingUseCase) Create(ctx context.Context, actorID string, in dto.CreatePickingRequest) (*dto.PickingResponse, error) {
	opType, err := uc.opTypeRepo.GetByID(in.OperationTypeID)
	if err != nil {
		return nil, err
	}
	if opType == nil {
		return nil, domain.ErrNotFound
	}
	sourceID, destID, err := uc.resolveDefaults(opType, in.SourceLocationID, in.DestinationLocationID)
	if err != nil {
		return nil, err
	}
	scheduled := in.ScheduledDate
	if scheduled.IsZero() {
		scheduled = time.Now()
	}
	now := time.Now()
	p := &entity.Picking{
		ID:                    uuid.New().String(),
		Partner:               in.Partner,
		OperationTypeID:       opType.ID,
		SourceLocationID:      sourceID,
		DestinationLocationID: destID,
		Status:                entity.StatusDraft,
		ScheduledDate:         scheduled,
		Notes:                 in.Notes,
		CreatedBy:             actorID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		n, err := r.Sequences.Next(opType.SequencePrefix)
		if err != nil {
			return err
		}
		p.Reference = fmt.Sprintf("%s%05d", opType.SequencePrefix, n)
		return r.Pickings.Create(p)
	})
	if err != nil {
		return nil, err
	}
	return toPickingResponse(p, nil), nil
}

// resolveDefaults resuelve origen/destino faltantes: primero las ubicaciones por
// defecto del tipo de operación y, si siguen vacías, las de la configuración del
// almacén (recepciones completan el destino, entregas el origen).
func (uc *PickingUseCase) resolveDefaults(opType *entity.OperationType, sourceID, destID string) (string, string, error) {
	if sourceID == "" {
		sourceID = opType.DefaultSourceLocationID
	}
	if destID == "" {
		destID = opType.DefaultDestinationLocID
	}
	if sourceID == "" || destID == "" {
		settings, err := uc.settingsRepo.Get()
		if err != nil {
			return "", "", err
		}
		if destID == "" && opType.Code == entity.OperationIncoming {
			destID = settings.DefaultReceiptLocationID
		}
		if sourceID == "" && opType.Code == entity.OperationOutgoing {
			sourceID = settings.DefaultDeliveryLocationID
		}
	}
	if sourceID == "" || destID == "" {
		return "", "", domain.ErrInvalidInput
	}
	if src, err := uc.locationRepo.GetByID(sourceID); err != nil || src == nil {
		if err != nil {
			return "", "", err
		}
		return "", "", domain.ErrNotFound
	}
	if dst, err := uc.locationRepo.GetByID(destID); err != nil || dst == nil {
		if err != nil {
			return "", "", err
		}
		return "", "", domain.ErrNotFound
	}
	return sourceID, destID, nil
}

// GetByID devuelve el picking con sus líneas, o nil si no existe.
func (uc *PickingUseCase) GetByID(ctx context.Context, id string) (*dto.PickingResponse, error) {
	p, err := uc.pickingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return uc.toResponse(p)
}

// List lista pickings (sin líneas) con filtros y paginación.
func (uc *PickingUseCase) List(ctx context.Context, filter repository.PickingFilter) (*dto.PickingListResponse, error) {
	list, err := uc.pickingRepo.List(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.PickingListResponse{
		Items: make([]dto.PickingResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, p := range list {
		r := toPickingResponse(p, nil)
		resp.Items = append(resp.Items, *r)
	}
	return resp, nil
}

// Update actualiza la cabecera. Solo se admite en draft: una vez confirmado, la
// cabecera queda congelada y solo se opera vía las transiciones.
func (uc *PickingUseCase) Update(ctx context.Context, id string, in dto.UpdatePickingRequest) (*dto.PickingResponse, error) {
	p, err := uc.pickingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status != entity.StatusDraft {
		return nil, domain.ErrConflict
	}
	if in.Partner != nil {
		p.Partner = *in.Partner
	}
	if in.SourceLocationID != nil {
		p.SourceLocationID = *in.SourceLocationID
	}
	if in.DestinationLocationID != nil {
		p.DestinationLocationID = *in.DestinationLocationID
	}
	if in.ScheduledDate != nil {
		p.ScheduledDate = *in.ScheduledDate
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	p.UpdatedAt = time.Now()
	if err := uc.pickingRepo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p)
}

// Delete elimina un picking en draft o cancelled junto con sus líneas. La
// eliminación de las líneas es explícita (colección poseída), no un cascade
// implícito del almacén.
func (uc *PickingUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.pickingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Status != entity.StatusDraft && p.Status != entity.StatusCancelled {
		return domain.ErrConflict
	}
	return uc.txRunner.Run(ctx, func(r TxRepos) error {
		moves, err := r.Moves.ListByPicking(id)
		if err != nil {
			return err
		}
		for _, m := range moves {
			if err := r.Moves.Delete(m.ID); err != nil {
				return err
			}
		}
		return r.Pickings.Delete(id)
	})
}

// AddMove agrega una línea al picking (solo en draft). Origen/destino se heredan
// de la cabecera salvo que la petición los sobrescriba.
func (uc *PickingUseCase) AddMove(ctx context.Context, pickingID string, in dto.AddStockMoveRequest) (*dto.StockMoveResponse, error) {
	p, err := uc.pickingRepo.GetByID(pickingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status != entity.StatusDraft {
		return nil, domain.ErrConflict
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	m := &entity.StockMove{
		ID:                    uuid.New().String(),
		PickingID:             p.ID,
		ProductID:             in.ProductID,
		Quantity:              in.Quantity,
		SourceLocationID:      p.SourceLocationID,
		DestinationLocationID: p.DestinationLocationID,
		Status:                entity.StatusDraft,
		Notes:                 in.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if in.SourceLocationID != "" {
		m.SourceLocationID = in.SourceLocationID
	}
	if in.DestinationLocationID != "" {
		m.DestinationLocationID = in.DestinationLocationID
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := uc.moveRepo.Create(m); err != nil {
		return nil, err
	}
	resp := toStockMoveResponse(m)
	return &resp, nil
}

// RemoveMove elimina una línea del picking (solo en draft). Excluir una línea es
// una operación explícita del caller, nunca un efecto colateral.
func (uc *PickingUseCase) RemoveMove(ctx context.Context, pickingID, moveID string) error {
	p, err := uc.pickingRepo.GetByID(pickingID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Status != entity.StatusDraft {
		return domain.ErrConflict
	}
	m, err := uc.moveRepo.GetByID(moveID)
	if err != nil {
		return err
	}
	if m == nil || m.PickingID != pickingID {
		return domain.ErrNotFound
	}
	return uc.moveRepo.Delete(moveID)
}
