package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

func TestAdjust_SumaYRegistraHistorial(t *testing.T) {
	f := newFixture()

	got, err := f.stock.Adjust(context.Background(), "user-1", dto.AdjustStockRequest{
		ProductID:  f.product.ID,
		LocationID: f.shelfA.ID,
		Delta:      decimal.NewFromInt(5),
		Notes:      "conteo físico",
	})
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(5)))

	adjustments := f.store.historyByAction(entity.ActionAdjustment)
	require.Len(t, adjustments, 1)
	require.NotNil(t, adjustments[0].Quantity)
	assert.True(t, adjustments[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "user-1", adjustments[0].UserID)
	assert.Contains(t, adjustments[0].Notes, "conteo físico")
}

func TestAdjust_UsaUbicacionDeAjustesPorDefecto(t *testing.T) {
	f := newFixture()

	got, err := f.stock.Adjust(context.Background(), "user-1", dto.AdjustStockRequest{
		ProductID: f.product.ID,
		Delta:     decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, f.losses.ID, got.LocationID)
}

func TestAdjust_DeltaCeroRechazado(t *testing.T) {
	f := newFixture()

	_, err := f.stock.Adjust(context.Background(), "user-1", dto.AdjustStockRequest{
		ProductID:  f.product.ID,
		LocationID: f.shelfA.ID,
		Delta:      decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_UbicacionSinSeguimientoRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.stock.Adjust(context.Background(), "user-1", dto.AdjustStockRequest{
		ProductID:  f.product.ID,
		LocationID: f.customer.ID,
		Delta:      decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_BajoCeroRevierte(t *testing.T) {
	f := newFixture()
	f.seedQuant(f.shelfA.ID, 2)

	_, err := f.stock.Adjust(context.Background(), "user-1", dto.AdjustStockRequest{
		ProductID:  f.product.ID,
		LocationID: f.shelfA.ID,
		Delta:      decimal.NewFromInt(-3),
	})
	var negative *domain.NegativeStockError
	require.ErrorAs(t, err, &negative)

	assert.True(t, f.store.quantity(f.product.ID, f.shelfA.ID).Equal(decimal.NewFromInt(2)))
	assert.Empty(t, f.store.historyByAction(entity.ActionAdjustment), "el historial del ajuste fallido no persiste")
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.stock.Adjust(context.Background(), "user-1", dto.AdjustStockRequest{
		ProductID:  "no-existe",
		LocationID: f.shelfA.ID,
		Delta:      decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStock_UmbralConfiguradoYExplicito(t *testing.T) {
	f := newFixture()
	// Umbral de la configuración: 5.
	f.seedQuant(f.shelfA.ID, 3)
	f.seedQuant(f.shelfB.ID, 8)

	low, err := f.stock.LowStock(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, f.shelfA.ID, low[0].LocationID)

	// Umbral explícito más alto incluye ambas filas.
	threshold := decimal.NewFromInt(10)
	low, err = f.stock.LowStock(context.Background(), &threshold)
	require.NoError(t, err)
	assert.Len(t, low, 2)
}

func TestOutOfStock(t *testing.T) {
	f := newFixture()
	f.seedQuant(f.shelfA.ID, 0)
	f.seedQuant(f.shelfB.ID, 4)

	out, err := f.stock.OutOfStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, f.shelfA.ID, out[0].LocationID)
}

func TestAvailable_DescuentaReservas(t *testing.T) {
	f := newFixture()
	k := quantKeyOf(f.product.ID, f.shelfA.ID)
	f.store.quants[k] = &entity.StockQuant{
		ID: k, ProductID: f.product.ID, LocationID: f.shelfA.ID,
		Quantity:         decimal.NewFromInt(10),
		ReservedQuantity: decimal.NewFromInt(4),
	}

	available, err := f.stock.Available(context.Background(), f.product.ID, f.shelfA.ID)
	require.NoError(t, err)
	assert.True(t, available.Equal(decimal.NewFromInt(6)))
}
