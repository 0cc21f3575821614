package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/internal/domain/stock"
)

// quantStore implementación en memoria del puerto de quants, suficiente para
// ejercitar las reglas del ledger sin base de datos.
type quantStore struct {
	rows map[string]*entity.StockQuant // clave: productID|locationID
}

func newQuantStore() *quantStore {
	return &quantStore{rows: make(map[string]*entity.StockQuant)}
}

func (s *quantStore) key(productID, locationID string) string {
	return productID + "|" + locationID
}

func (s *quantStore) seed(productID, locationID string, qty decimal.Decimal) {
	s.rows[s.key(productID, locationID)] = &entity.StockQuant{
		ID: s.key(productID, locationID), ProductID: productID, LocationID: locationID, Quantity: qty,
	}
}

func (s *quantStore) Get(productID, locationID string) (*entity.StockQuant, error) {
	return s.rows[s.key(productID, locationID)], nil
}

func (s *quantStore) GetForUpdate(productID, locationID string) (*entity.StockQuant, error) {
	if q, ok := s.rows[s.key(productID, locationID)]; ok {
		return q, nil
	}
	return &entity.StockQuant{ProductID: productID, LocationID: locationID}, nil
}

func (s *quantStore) ApplyDelta(productID, locationID string, delta decimal.Decimal) (*entity.StockQuant, error) {
	k := s.key(productID, locationID)
	q, ok := s.rows[k]
	if !ok {
		q = &entity.StockQuant{ID: k, ProductID: productID, LocationID: locationID}
		s.rows[k] = q
	}
	q.Quantity = q.Quantity.Add(delta)
	return q, nil
}

func (s *quantStore) List(repository.StockQuantFilter) ([]*entity.StockQuant, error) { return nil, nil }
func (s *quantStore) LowStock(decimal.Decimal) ([]*entity.StockQuant, error)        { return nil, nil }
func (s *quantStore) OutOfStock() ([]*entity.StockQuant, error)                     { return nil, nil }

func internalLoc(id string) *entity.Location {
	return &entity.Location{ID: id, UsageType: entity.UsageInternal}
}

func TestAvailable_SinFilaEsCero(t *testing.T) {
	store := newQuantStore()
	got, err := stock.Available(store, "p1", "loc1")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCheckAvailability(t *testing.T) {
	loc := internalLoc("loc1")
	quant := &entity.StockQuant{ProductID: "p1", LocationID: "loc1", Quantity: decimal.NewFromInt(5)}

	assert.NoError(t, stock.CheckAvailability(quant, loc, "p1", decimal.NewFromInt(5)))

	err := stock.CheckAvailability(quant, loc, "p1", decimal.NewFromInt(6))
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Required.Equal(decimal.NewFromInt(6)))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(5)))

	// La cantidad reservada no está disponible.
	quant.ReservedQuantity = decimal.NewFromInt(2)
	assert.Error(t, stock.CheckAvailability(quant, loc, "p1", decimal.NewFromInt(4)))

	// Sin fila bloqueada = disponible cero.
	assert.Error(t, stock.CheckAvailability(nil, loc, "p1", decimal.NewFromInt(1)))

	// Ubicaciones sin invariante aceptan cualquier retiro.
	transit := &entity.Location{ID: "t1", UsageType: entity.UsageTransit}
	assert.NoError(t, stock.CheckAvailability(nil, transit, "p1", decimal.NewFromInt(99)))
}

func TestApply_UbicacionSinMaterializacion(t *testing.T) {
	store := newQuantStore()
	customer := &entity.Location{ID: "c1", UsageType: entity.UsageCustomer}

	q, err := stock.Apply(store, customer, "p1", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Nil(t, q, "customer no materializa quants")
	assert.Empty(t, store.rows)
}

func TestApply_CreaFilaYAcumula(t *testing.T) {
	store := newQuantStore()
	loc := internalLoc("loc1")

	q, err := stock.Apply(store, loc, "p1", decimal.NewFromInt(7))
	require.NoError(t, err)
	assert.True(t, q.Quantity.Equal(decimal.NewFromInt(7)))

	q, err = stock.Apply(store, loc, "p1", decimal.NewFromInt(-3))
	require.NoError(t, err)
	assert.True(t, q.Quantity.Equal(decimal.NewFromInt(4)))
}

func TestApply_RechazaStockNegativo(t *testing.T) {
	store := newQuantStore()
	loc := internalLoc("loc1")
	store.seed("p1", "loc1", decimal.NewFromInt(2))

	_, err := stock.Apply(store, loc, "p1", decimal.NewFromInt(-3))
	var negative *domain.NegativeStockError
	require.ErrorAs(t, err, &negative)
	assert.True(t, negative.Resulting.Equal(decimal.NewFromInt(-1)))

	// La fila no se tocó.
	q, _ := store.Get("p1", "loc1")
	assert.True(t, q.Quantity.Equal(decimal.NewFromInt(2)))
}

func TestApply_TransitoAdmiteNegativo(t *testing.T) {
	store := newQuantStore()
	transit := &entity.Location{ID: "t1", UsageType: entity.UsageTransit}

	q, err := stock.Apply(store, transit, "p1", decimal.NewFromInt(-5))
	require.NoError(t, err)
	assert.True(t, q.Quantity.Equal(decimal.NewFromInt(-5)), "transit materializa pero no exige no-negatividad")
}
