package inventory

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// SlipLine línea del documento de picking con los datos ya resueltos para imprimir.
type SlipLine struct {
	SKU         string
	Name        string
	UOM         string
	Quantity    string
	Source      string
	Destination string
	Status      string
}

// SlipData datos planos para la generación del PDF del picking.
type SlipData struct {
	Reference     string
	Partner       string
	Status        string
	ScheduledDate string
	Source        string
	Destination   string
	Notes         string
	Lines         []SlipLine
}

// SlipUseCase arma los datos del documento de picking y delega el render al
// generador PDF inyectado.
type SlipUseCase struct {
	picking   *PickingUseCase
	generator SlipGenerator
}

// NewSlipUseCase construye el caso de uso del documento de picking.
func NewSlipUseCase(picking *PickingUseCase, generator SlipGenerator) *SlipUseCase {
	return &SlipUseCase{picking: picking, generator: generator}
}

// Generate devuelve el PDF del picking con sus líneas.
func (uc *SlipUseCase) Generate(ctx context.Context, pickingID string) ([]byte, error) {
	p, err := uc.picking.pickingRepo.GetByID(pickingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	moves, err := uc.picking.moveRepo.ListByPicking(p.ID)
	if err != nil {
		return nil, err
	}
	locs, err := uc.picking.resolveLocations(uc.picking.locationRepo, moves)
	if err != nil && len(moves) > 0 {
		return nil, err
	}
	data := SlipData{
		Reference:     p.Reference,
		Partner:       p.Partner,
		Status:        p.Status,
		ScheduledDate: p.ScheduledDate.Format("02/01/2006 15:04"),
		Notes:         p.Notes,
	}
	if src, err := uc.picking.locationRepo.GetByID(p.SourceLocationID); err == nil && src != nil {
		data.Source = src.Name
	}
	if dst, err := uc.picking.locationRepo.GetByID(p.DestinationLocationID); err == nil && dst != nil {
		data.Destination = dst.Name
	}
	for _, m := range moves {
		line := SlipLine{
			Quantity: m.Quantity.String(),
			Status:   m.Status,
		}
		if product, err := uc.picking.productRepo.GetByID(m.ProductID); err == nil && product != nil {
			line.SKU = product.SKU
			line.Name = product.Name
			line.UOM = product.UOM
		}
		line.Source = locationName(locs, m.SourceLocationID)
		line.Destination = locationName(locs, m.DestinationLocationID)
		data.Lines = append(data.Lines, line)
	}
	return uc.generator.GenerateSlip(ctx, data)
}

func locationName(locs map[string]*entity.Location, id string) string {
	if l := locs[id]; l != nil {
		return l.Name
	}
	return id
}
