// Package inventory implementa la máquina de estados del picking:
// draft → confirmed → assigned → in_progress → done, con cancelled alcanzable
// desde cualquier estado no terminal. Las transiciones confirm/validate/cancel
// corren cada una como una unidad de trabajo serializable (TxRunner) que muta el
// ledger y el historial de auditoría juntos, o no muta nada.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/internal/domain/stock"
)

// PickingUseCase casos de uso del agregado picking: CRUD de cabecera y líneas (solo en
// draft) y las tres transiciones del flujo de almacén.
type PickingUseCase struct {
	txRunner     TxRunner
	pickingRepo  repository.PickingRepository
	moveRepo     repository.StockMoveRepository
	opTypeRepo   repository.OperationTypeRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	pickingRepo repository.PickingRepository,
	moveRepo repository.StockMoveRepository,
	opTypeRepo repository.OperationTypeRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
) *PickingUseCase {
	return &PickingUseCase{
		txRunner:     txRunner,
		pickingRepo:  pickingRepo,
		moveRepo:     moveRepo,
		opTypeRepo:   opTypeRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
	}
}

// Confirm transiciona el picking de draft a confirmed y registra un cambio de
// estado en el historial. No propaga el estado a las líneas: las líneas solo
// se actualizan en validate y cancel.
func (uc *PickingUseCase) Confirm(ctx context.Context, pickingID, actorID string) (*dto.PickingResponse, error) {
	var result *entity.Picking
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		p, err := r.Pickings.GetForUpdate(pickingID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !p.CanConfirm() {
			return &domain.InvalidTransitionError{PickingID: p.ID, Current: p.Status, Attempted: entity.StatusConfirmed}
		}
		old := p.Status
		p.Status = entity.StatusConfirmed
		p.UpdatedAt = time.Now()
		if err := r.Pickings.Update(p); err != nil {
			return err
		}
		if err := recordStatusChange(r.History, p, old, actorID); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(result)
}

// Validate ejecuta el picking: por cada línea verifica disponibilidad en el
// origen, descuenta del origen, suma en el destino, marca la línea como done y
// registra un movimiento en el historial; al final marca el picking como done.
// Todo ocurre en una sola transacción: cualquier fallo (stock insuficiente,
// línea inválida, error del historial) revierte cada mutación de esta llamada.
//
// Antes de procesar las líneas se bloquean (SELECT FOR UPDATE) todas las filas
// de stock_quants que la llamada tocará, en orden ascendente (producto,
// ubicación), de modo que dos validaciones concurrentes sobre los mismos pares
// no puedan pasar ambas la verificación de disponibilidad ni interbloquearse.
// Dentro de la llamada las líneas se aplican en su orden de inserción y cada
// verificación ve los descuentos de las líneas anteriores.
func (uc *PickingUseCase) Validate(ctx context.Context, pickingID, actorID string) (*dto.PickingResponse, error) {
	var result *entity.Picking
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		p, err := r.Pickings.GetForUpdate(pickingID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !p.CanValidate() {
			return &domain.InvalidTransitionError{PickingID: p.ID, Current: p.Status, Attempted: entity.StatusDone}
		}
		moves, err := r.Moves.ListByPicking(p.ID)
		if err != nil {
			return err
		}
		// Validación por línea antes de tocar ledger o historial.
		for _, m := range moves {
			if err := m.Validate(); err != nil {
				return err
			}
		}
		locs, err := uc.resolveLocations(r.Locations, moves)
		if err != nil {
			return err
		}
		if err := lockQuants(r.Quants, moves, locs); err != nil {
			return err
		}
		for _, m := range moves {
			if err := uc.applyMove(r, p, m, locs, actorID); err != nil {
				return err
			}
		}
		old := p.Status
		now := time.Now()
		p.Status = entity.StatusDone
		p.CompletionDate = &now
		p.UpdatedAt = now
		if err := r.Pickings.Update(p); err != nil {
			return err
		}
		if err := recordStatusChange(r.History, p, old, actorID); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(result)
}

// Cancel transiciona el picking a cancelled desde cualquier estado no terminal.
// Las líneas se marcan cancelled pero el ledger no se toca: la cancelación
// nunca muta cantidades.
func (uc *PickingUseCase) Cancel(ctx context.Context, pickingID, actorID string) (*dto.PickingResponse, error) {
	var result *entity.Picking
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		p, err := r.Pickings.GetForUpdate(pickingID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !p.CanCancel() {
			return &domain.InvalidTransitionError{PickingID: p.ID, Current: p.Status, Attempted: entity.StatusCancelled}
		}
		old := p.Status
		p.Status = entity.StatusCancelled
		p.UpdatedAt = time.Now()
		if err := r.Pickings.Update(p); err != nil {
			return err
		}
		if err := r.Moves.UpdateStatusByPicking(p.ID, entity.StatusCancelled); err != nil {
			return err
		}
		if err := recordStatusChange(r.History, p, old, actorID); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(result)
}

// resolveLocations carga en un solo viaje todas las ubicaciones referenciadas
// por las líneas y verifica que existan.
func (uc *PickingUseCase) resolveLocations(locations repository.LocationRepository, moves []*entity.StockMove) (map[string]*entity.Location, error) {
	idSet := make(map[string]struct{}, len(moves)*2)
	for _, m := range moves {
		idSet[m.SourceLocationID] = struct{}{}
		idSet[m.DestinationLocationID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	locs, err := locations.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if locs[id] == nil {
			return nil, domain.ErrNotFound
		}
	}
	return locs, nil
}

// quantKey identifica un par (producto, ubicación) tocado por la validación.
type quantKey struct {
	productID  string
	locationID string
}

// lockQuants bloquea todas las filas de stock que la validación va a tocar,
// en orden ascendente determinista, antes de aplicar ninguna línea.
func lockQuants(quants repository.StockQuantRepository, moves []*entity.StockMove, locs map[string]*entity.Location) error {
	keySet := make(map[quantKey]struct{})
	for _, m := range moves {
		if locs[m.SourceLocationID].TracksQuantity() {
			keySet[quantKey{m.ProductID, m.SourceLocationID}] = struct{}{}
		}
		if locs[m.DestinationLocationID].TracksQuantity() {
			keySet[quantKey{m.ProductID, m.DestinationLocationID}] = struct{}{}
		}
	}
	keys := make([]quantKey, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].productID != keys[j].productID {
			return keys[i].productID < keys[j].productID
		}
		return keys[i].locationID < keys[j].locationID
	})
	for _, k := range keys {
		if _, err := quants.GetForUpdate(k.productID, k.locationID); err != nil {
			return err
		}
	}
	return nil
}

// applyMove aplica una línea ya validada: verificación de disponibilidad en el
// origen, delta negativo en origen, delta positivo en destino, línea a done y
// un registro stock_move en el historial.
func (uc *PickingUseCase) applyMove(r TxRepos, p *entity.Picking, m *entity.StockMove, locs map[string]*entity.Location, actorID string) error {
	src := locs[m.SourceLocationID]
	dst := locs[m.DestinationLocationID]

	if src.EnforcesAvailability() {
		quant, err := r.Quants.GetForUpdate(m.ProductID, src.ID)
		if err != nil {
			return err
		}
		if err := stock.CheckAvailability(quant, src, m.ProductID, m.Quantity); err != nil {
			return err
		}
	}
	if _, err := stock.Apply(r.Quants, src, m.ProductID, m.Quantity.Neg()); err != nil {
		return err
	}
	if _, err := stock.Apply(r.Quants, dst, m.ProductID, m.Quantity); err != nil {
		return err
	}
	if err := r.Moves.UpdateStatus(m.ID, entity.StatusDone); err != nil {
		return err
	}
	notes := "línea validada"
	if m.Notes != "" {
		notes = "línea validada: " + m.Notes
	}
	qty := m.Quantity
	return r.History.Create(&entity.MoveHistory{
		UserID:                actorID,
		ActionType:            entity.ActionStockMove,
		PickingID:             p.ID,
		ProductID:             m.ProductID,
		Quantity:              &qty,
		SourceLocationID:      m.SourceLocationID,
		DestinationLocationID: m.DestinationLocationID,
		Notes:                 notes,
	})
}

// recordStatusChange agrega un registro status_change al historial.
func recordStatusChange(history repository.MoveHistoryRepository, p *entity.Picking, oldStatus, actorID string) error {
	return history.Create(&entity.MoveHistory{
		UserID:     actorID,
		ActionType: entity.ActionStatusChange,
		PickingID:  p.ID,
		OldStatus:  oldStatus,
		NewStatus:  p.Status,
		Notes:      fmt.Sprintf("picking %s: %s → %s", p.Reference, oldStatus, p.Status),
	})
}

// toResponse arma la respuesta con las líneas en orden de inserción.
func (uc *PickingUseCase) toResponse(p *entity.Picking) (*dto.PickingResponse, error) {
	moves, err := uc.moveRepo.ListByPicking(p.ID)
	if err != nil {
		return nil, err
	}
	return toPickingResponse(p, moves), nil
}

func toPickingResponse(p *entity.Picking, moves []*entity.StockMove) *dto.PickingResponse {
	resp := &dto.PickingResponse{
		ID:                    p.ID,
		Reference:             p.Reference,
		Partner:               p.Partner,
		OperationTypeID:       p.OperationTypeID,
		SourceLocationID:      p.SourceLocationID,
		DestinationLocationID: p.DestinationLocationID,
		Status:                p.Status,
		ScheduledDate:         p.ScheduledDate,
		CompletionDate:        p.CompletionDate,
		Notes:                 p.Notes,
		CreatedBy:             p.CreatedBy,
		StockMoves:            make([]dto.StockMoveResponse, 0, len(moves)),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
	for _, m := range moves {
		resp.StockMoves = append(resp.StockMoves, toStockMoveResponse(m))
	}
	return resp
}

func toStockMoveResponse(m *entity.StockMove) dto.StockMoveResponse {
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
