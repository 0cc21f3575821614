package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/internal/domain/stock"
)

// StockUseCase operaciones del ledger fuera del flujo de picking: ajustes
// manuales y consultas de solo lectura (niveles, stock bajo, sin stock).
type StockUseCase struct {
	txRunner     TxRunner
	quantRepo    repository.StockQuantRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	settingsRepo repository.SettingsRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	quantRepo repository.StockQuantRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	settingsRepo repository.SettingsRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:     txRunner,
		quantRepo:    quantRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		settingsRepo: settingsRepo,
	}
}

// Adjust aplica un ajuste manual de inventario: delta con signo sobre el quant
// (producto, ubicación) y un registro adjustment en el historial, en una sola
// transacción. Si no se indica ubicación se usa la ubicación de ajustes por
// defecto de la configuración. El invariante de no-negatividad aplica igual que
// en el flujo de picking.
func (uc *StockUseCase) Adjust(ctx context.Context, actorID string, in dto.AdjustStockRequest) (*dto.StockQuantResponse, error) {
	if in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	locationID := in.LocationID
	if locationID == "" {
		settings, err := uc.settingsRepo.Get()
		if err != nil {
			return nil, err
		}
		locationID = settings.DefaultAdjustmentLocID
	}
	if locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if !location.TracksQuantity() {
		// Ajustar una fuente/sumidero infinito no tiene efecto observable.
		return nil, domain.ErrInvalidInput
	}

	var result *entity.StockQuant
	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		quant, err := stock.Apply(r.Quants, location, in.ProductID, in.Delta)
		if err != nil {
			return err
		}
		delta := in.Delta
		notes := "ajuste manual"
		if in.Notes != "" {
			notes = "ajuste manual: " + in.Notes
		}
		if err := r.History.Create(&entity.MoveHistory{
			UserID:                actorID,
			ActionType:            entity.ActionAdjustment,
			ProductID:             in.ProductID,
			Quantity:              &delta,
			SourceLocationID:      locationID,
			DestinationLocationID: locationID,
			Notes:                 notes,
		}); err != nil {
			return err
		}
		result = quant
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toQuantResponse(result)
	return &resp, nil
}

// Available devuelve la cantidad disponible de un producto en una ubicación.
func (uc *StockUseCase) Available(ctx context.Context, productID, locationID string) (decimal.Decimal, error) {
	return stock.Available(uc.quantRepo, productID, locationID)
}

// List lista quants con filtros y paginación.
func (uc *StockUseCase) List(ctx context.Context, filter repository.StockQuantFilter) ([]dto.StockQuantResponse, error) {
	quants, err := uc.quantRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return toQuantResponses(quants), nil
}

// LowStock lista los quants con disponible por debajo del umbral configurado
// (o del indicado, si threshold no es nil). Consulta pura, sin efectos.
func (uc *StockUseCase) LowStock(ctx context.Context, threshold *decimal.Decimal) ([]dto.StockQuantResponse, error) {
	limit := decimal.Decimal{}
	if threshold != nil {
		limit = *threshold
	} else {
		settings, err := uc.settingsRepo.Get()
		if err != nil {
			return nil, err
		}
		limit = settings.LowStockThreshold
	}
	quants, err := uc.quantRepo.LowStock(limit)
	if err != nil {
		return nil, err
	}
	return toQuantResponses(quants), nil
}

// OutOfStock lista los quants con disponible menor o igual a cero.
func (uc *StockUseCase) OutOfStock(ctx context.Context) ([]dto.StockQuantResponse, error) {
	quants, err := uc.quantRepo.OutOfStock()
	if err != nil {
		return nil, err
	}
	return toQuantResponses(quants), nil
}

func toQuantResponse(q *entity.StockQuant) dto.StockQuantResponse {
	return dto.StockQuantResponse{
		ID:                q.ID,
		ProductID:         q.ProductID,
		LocationID:        q.LocationID,
		Quantity:          q.Quantity,
		ReservedQuantity:  q.ReservedQuantity,
		AvailableQuantity: q.Available(),
		UpdatedAt:         q.UpdatedAt,
	}
}

func toQuantResponses(quants []*entity.StockQuant) []dto.StockQuantResponse {
	out := make([]dto.StockQuantResponse, 0, len(quants))
	for _, q := range quants {
		out = append(out, toQuantResponse(q))
	}
	return out
}
