// Package stock implementa las reglas del ledger de inventario (servicio de dominio):
// disponibilidad, aplicación de deltas y el invariante de cantidad no negativa.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// Available devuelve la cantidad disponible (en mano menos reservada) del producto
// en la ubicación. Sin fila = sin stock: devuelve cero, no es un error.
func Available(quants repository.StockQuantRepository, productID, locationID string) (decimal.Decimal, error) {
	quant, err := quants.Get(productID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	if quant == nil {
		return decimal.Zero, nil
	}
	return quant.Available(), nil
}

// CheckAvailability verifica que el origen pueda cubrir la cantidad requerida.
// Debe llamarse con la fila ya bloqueada (GetForUpdate) dentro de la transacción.
// Solo aplica a ubicaciones con seguimiento de disponibilidad.
func CheckAvailability(quant *entity.StockQuant, location *entity.Location, productID string, required decimal.Decimal) error {
	if !location.EnforcesAvailability() {
		return nil
	}
	available := decimal.Zero
	if quant != nil {
		available = quant.Available()
	}
	if available.LessThan(required) {
		return &domain.InsufficientStockError{
			ProductID:  productID,
			LocationID: location.ID,
			Required:   required,
			Available:  available,
		}
	}
	return nil
}

// Apply aplica un delta de cantidad al quant (producto, ubicación). Es la única vía
// por la que el core muta StockQuant.Quantity:
//   - ubicaciones sin materialización (customer/supplier) se saltan por completo;
//   - en ubicaciones con seguimiento, un delta que dejaría la cantidad bajo cero
//     falla con NegativeStockError (segunda barrera tras CheckAvailability);
//   - la fila se crea con cantidad cero si no existe y el delta se aplica con un
//     upsert aditivo, por lo que es atómico frente a escritores concurrentes.
func Apply(quants repository.StockQuantRepository, location *entity.Location, productID string, delta decimal.Decimal) (*entity.StockQuant, error) {
	if !location.TracksQuantity() {
		return nil, nil
	}
	if delta.IsNegative() && location.EnforcesAvailability() {
		locked, err := quants.GetForUpdate(productID, location.ID)
		if err != nil {
			return nil, err
		}
		resulting := locked.Quantity.Add(delta)
		if resulting.IsNegative() {
			return nil, &domain.NegativeStockError{
				ProductID:  productID,
				LocationID: location.ID,
				Resulting:  resulting,
			}
		}
	}
	return quants.ApplyDelta(productID, location.ID, delta)
}
