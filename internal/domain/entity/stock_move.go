package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// StockMove línea de un picking: mueve una cantidad de un producto entre dos
// ubicaciones. Pertenece exactamente a un picking. Origen/destino se heredan de
// la cabecera salvo que la línea los sobrescriba (traslados con ruta propia).
type StockMove struct {
	ID                    string
	PickingID             string
	ProductID             string
	Quantity              decimal.Decimal // siempre > 0
	SourceLocationID      string
	DestinationLocationID string
	Status                string // mismos valores que Picking, sin in_progress
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Validate verifica los invariantes de la línea antes de tocar el ledger.
func (m *StockMove) Validate() error {
	if m.ProductID == "" {
		return &domain.LineValidationError{MoveID: m.ID, Field: "product_id", Reason: "requerido"}
	}
	if !m.Quantity.GreaterThan(decimal.Zero) {
		return &domain.LineValidationError{MoveID: m.ID, Field: "quantity", Reason: "debe ser mayor que cero"}
	}
	return nil
}
