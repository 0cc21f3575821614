package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// fixture almacén en memoria con el catálogo mínimo: ubicaciones de cada tipo
// de uso, los tres tipos de operación estándar y un producto.
type fixture struct {
	store *memStore
	uc    *inventory.PickingUseCase
	stock *inventory.StockUseCase

	supplier, customer, shelfA, shelfB, transit, losses *entity.Location
	opIn, opOut, opInt                                  *entity.OperationType
	product                                             *entity.Product
}

func newFixture() *fixture {
	s := newMemStore()
	f := &fixture{store: s}

	f.supplier = &entity.Location{ID: "loc-supplier", Name: "Proveedores", UsageType: entity.UsageSupplier, IsActive: true}
	f.customer = &entity.Location{ID: "loc-customer", Name: "Clientes", UsageType: entity.UsageCustomer, IsActive: true}
	f.shelfA = &entity.Location{ID: "loc-shelf-a", Name: "WH/Stock/A", UsageType: entity.UsageInternal, IsActive: true}
	f.shelfB = &entity.Location{ID: "loc-shelf-b", Name: "WH/Stock/B", UsageType: entity.UsageInternal, IsActive: true}
	f.transit = &entity.Location{ID: "loc-transit", Name: "WH/Tránsito", UsageType: entity.UsageTransit, IsActive: true}
	f.losses = &entity.Location{ID: "loc-losses", Name: "Pérdidas", UsageType: entity.UsageInventory, IsActive: true}
	for _, l := range []*entity.Location{f.supplier, f.customer, f.shelfA, f.shelfB, f.transit, f.losses} {
		s.locations[l.ID] = l
	}

	f.opIn = &entity.OperationType{
		ID: "op-in", Name: "Recepciones", Code: entity.OperationIncoming, SequencePrefix: "IN",
		DefaultSourceLocationID: f.supplier.ID, DefaultDestinationLocID: f.shelfA.ID,
	}
	f.opOut = &entity.OperationType{
		ID: "op-out", Name: "Entregas", Code: entity.OperationOutgoing, SequencePrefix: "OUT",
		DefaultSourceLocationID: f.shelfA.ID, DefaultDestinationLocID: f.customer.ID,
	}
	f.opInt = &entity.OperationType{
		ID: "op-int", Name: "Traslados", Code: entity.OperationInternal, SequencePrefix: "INT",
		DefaultSourceLocationID: f.shelfA.ID, DefaultDestinationLocID: f.shelfB.ID,
	}
	for _, ot := range []*entity.OperationType{f.opIn, f.opOut, f.opInt} {
		s.opTypes[ot.ID] = ot
	}

	f.product = &entity.Product{
		ID: "prod-1", SKU: "SKU-001", Name: "Tornillo", UOM: "pcs", IsActive: true,
		Cost: decimal.NewFromInt(100), Price: decimal.NewFromInt(150),
	}
	s.products[f.product.ID] = f.product

	s.settings.LowStockThreshold = decimal.NewFromInt(5)
	s.settings.DefaultAdjustmentLocID = f.losses.ID

	txRunner := &memTxRunner{s}
	f.uc = inventory.NewUseCase(
		txRunner, &memPickings{s}, &memMoves{s}, &memOpTypes{s},
		&memLocations{s}, &memProducts{s}, &memSettings{s},
	)
	f.stock = inventory.NewStockUseCase(
		txRunner, &memQuants{s}, &memProducts{s}, &memLocations{s}, &memSettings{s},
	)
	return f
}

func (f *fixture) seedQuant(locationID string, qty int64) {
	k := quantKeyOf(f.product.ID, locationID)
	f.store.quants[k] = &entity.StockQuant{
		ID: k, ProductID: f.product.ID, LocationID: locationID, Quantity: decimal.NewFromInt(qty),
	}
}

func (f *fixture) createPicking(t *testing.T, opTypeID string) *dto.PickingResponse {
	t.Helper()
	p, err := f.uc.Create(context.Background(), "user-1", dto.CreatePickingRequest{
		OperationTypeID: opTypeID,
		Partner:         "ACME",
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) addLine(t *testing.T, pickingID string, qty int64, srcID, dstID string) *dto.StockMoveResponse {
	t.Helper()
	m, err := f.uc.AddMove(context.Background(), pickingID, dto.AddStockMoveRequest{
		ProductID:             f.product.ID,
		Quantity:              decimal.NewFromInt(qty),
		SourceLocationID:      srcID,
		DestinationLocationID: dstID,
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) confirm(t *testing.T, pickingID string) {
	t.Helper()
	_, err := f.uc.Confirm(context.Background(), pickingID, "user-1")
	require.NoError(t, err)
}

func TestCreate_GeneraReferenciasSecuenciales(t *testing.T) {
	f := newFixture()

	p1 := f.createPicking(t, f.opIn.ID)
	p2 := f.createPicking(t, f.opIn.ID)
	p3 := f.createPicking(t, f.opOut.ID)

	assert.Equal(t, "IN00001", p1.Reference)
	assert.Equal(t, "IN00002", p2.Reference)
	assert.Equal(t, "OUT00001", p3.Reference, "cada prefijo lleva su propia secuencia")
	assert.Equal(t, entity.StatusDraft, p1.Status)
	assert.Equal(t, f.supplier.ID, p1.SourceLocationID, "hereda el origen por defecto del tipo de operación")
	assert.Equal(t, f.shelfA.ID, p1.DestinationLocationID)
}

func TestCreate_TipoOperacionInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), "user-1", dto.CreatePickingRequest{OperationTypeID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfirm_RegistraCambioDeEstado(t *testing.T) {
	f := newFixture()
	p := f.createPicking(t, f.opInt.ID)
	f.addLine(t, p.ID, 2, "", "")

	got, err := f.uc.Confirm(context.Background(), p.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, got.Status)
	// Confirmar no toca las líneas.
	require.Len(t, got.StockMoves, 1)
	assert.Equal(t, entity.StatusDraft, got.StockMoves[0].Status)

	changes := f.store.historyByAction(entity.ActionStatusChange)
	require.Len(t, changes, 1)
	assert.Equal(t, entity.StatusDraft, changes[0].OldStatus)
	assert.Equal(t, entity.StatusConfirmed, changes[0].NewStatus)
	assert.Equal(t, "user-1", changes[0].UserID)
}

func TestConfirm_SoloDesdeDraft(t *testing.T) {
	f := newFixture()
	p := f.createPicking(t, f.opInt.ID)
	f.confirm(t, p.ID)

	_, err := f.uc.Confirm(context.Background(), p.ID, "user-1")
	var transition *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, entity.StatusConfirmed, transition.Current)
}

func TestValidate_TrasladoInterno(t *testing.T) {
	f := newFixture()
	f.seedQuant(f.shelfA.ID, 10)

	p := f.createPicking(t, f.opInt.ID)
	f.addLine(t, p.ID, 4, "", "")
	f.confirm(t, p.ID)

	got, err := f.uc.Validate(context.Background(), p.ID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, got.Status)
	require.NotNil(t, got.CompletionDate)
	require.Len(t, got.StockMoves, 1)
	assert.Equal(t, entity.StatusDone, got.StockMoves[0].Status)

	// La cantidad se conserva: lo que sale de A entra en B.
	assert.True(t, f.store.quantity(f.product.ID, f.shelfA.ID).Equal(decimal.NewFromInt(6)))
	assert.True(t, f.store.quantity(f.product.ID, f.shelfB.ID).Equal(decimal.NewFromInt(4)))

	movs := f.store.historyByAction(entity.ActionStockMove)
	require.Len(t, movs, 1)
	require.NotNil(t, movs[0].Quantity)
	assert.True(t, movs[0].Quantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, f.shelfA.ID, movs[0].SourceLocationID)
	assert.Equal(t, f.shelfB.ID, movs[0].DestinationLocationID)
	// confirm y validate: dos cambios de estado.
	assert.Len(t, f.store.historyByAction(entity.ActionStatusChange), 2)
}

func TestValidate_EnDraftFalla(t *testing.T) {
	f := newFixture()
	p := f.createPicking(t, f.opInt.ID)

	_, err := f.uc.Validate(context.Background(), p.ID, "user-1")
	var transition *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &transition)
}

// El test central de atomicidad: si la segunda línea no tiene stock, la primera
// (ya aplicada dentro de la transacción) también se revierte y el historial no
// conserva nada de la llamada fallida.
func TestValidate_StockInsuficienteRevierteTodo(t *testing.T) {
	f := newFixture()
	f.seedQuant(f.shelfA.ID, 3)

	p := f.createPicking(t, f.opInt.ID)
	f.addLine(t, p.ID, 2, "", "")
	f.addLine(t, p.ID, 2, "", "")
	f.confirm(t, p.ID)

	_, err := f.uc.Validate(context.Background(), p.ID, "user-1")
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Required.Equal(decimal.NewFromInt(2)))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(1)), "ve el descuento de la primera línea")

	// Nada persistió: quants, picking, líneas e historial quedan como antes.
	assert.True(t, f.store.quantity(f.product.ID, f.shelfA.ID).Equal(decimal.NewFromInt(3)))
	assert.True(t, f.store.quantity(f.product.ID, f.shelfB.ID).IsZero())

	kept, err := f.uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, kept.Status)
	for _, m := range kept.StockMoves {
		assert.Equal(t, entity.StatusDraft, m.Status)
	}
	assert.Empty(t, f.store.historyByAction(entity.ActionStockMove))
	assert.Len(t, f.store.historyByAction(entity.ActionStatusChange), 1, "solo el confirm previo")
}

func TestValidate_RecepcionNoMaterializaProveedor(t *testing.T) {
	f := newFixture()

	p := f.createPicking(t, f.opIn.ID)
	f.addLine(t, p.ID, 5, "", "")
	f.confirm(t, p.ID)

	_, err := f.uc.Validate(context.Background(), p.ID, "user-1")
	require.NoError(t, err)

	// El proveedor es fuente infinita: recibe sin fila de quant previa y el
	// retiro no deja fila negativa.
	assert.True(t, f.store.quantity(f.product.ID, f.shelfA.ID).Equal(decimal.NewFromInt(5)))
	_, materialized := f.store.quants[quantKeyOf(f.product.ID, f.supplier.ID)]
	assert.False(t, materialized, "supplier nunca materializa quants")
}

func TestValidate_EntregaSinStockFalla(t *testing.T) {
	f := newFixture()

	p := f.createPicking(t, f.opOut.ID)
	f.addLine(t, p.ID, 1, "", "")
	f.confirm(t, p.ID)

	_, err := f.uc.Validate(context.Background(), p.ID, "user-1")
	var insufficient *domain.InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
}

func TestValidate_TransitoExentoDeDisponibilidad(t *testing.T) {
	f := newFixture()

	// Traslado con origen en tránsito y sin stock allí: el tránsito materializa
	// quants pero no exige disponibilidad, así que queda en negativo.
	p, err := f.uc.Create(context.Background(), "user-1", dto.CreatePickingRequest{
		OperationTypeID:  f.opInt.ID,
		SourceLocationID: f.transit.ID,
	})
	require.NoError(t, err)
	f.addLine(t, p.ID, 3, "", "")
	f.confirm(t, p.ID)

	_, err = f.uc.Validate(context.Background(), p.ID, "user-1")
	require.NoError(t, err)

	assert.True(t, f.store.quantity(f.product.ID, f.transit.ID).Equal(decimal.NewFromInt(-3)))
	assert.True(t, f.store.quantity(f.product.ID, f.shelfB.ID).Equal(decimal.NewFromInt(3)))
}

// Las líneas se aplican en orden de inserción dentro de la misma transacción:
// la segunda puede consumir lo que la primera acaba de abonar.
func TestValidate_LineasVenLosAbonosAnteriores(t *testing.T) {
	f := newFixture()

	p := f.createPicking(t, f.opInt.ID)
	f.addLine(t, p.ID, 5, f.supplier.ID, f.shelfA.ID)
	f.addLine(t, p.ID, 5, f.shelfA.ID, f.customer.ID)
	f.confirm(t, p.ID)

	_, err := f.uc.Validate(context.Background(), p.ID, "user-1")
	require.NoError(t, err)

	assert.True(t, f.store.quantity(f.product.ID, f.shelfA.ID).IsZero(), "entra y sale en el mismo picking")
	assert.Len(t, f.store.historyByAction(entity.ActionStockMove), 2)
}

func TestCancel_PropagaALineasSinTocarElLedger(t *testing.T) {
	f := newFixture()
	f.seedQuant(f.shelfA.ID, 10)

	p := f.createPicking(t, f.opInt.ID)
	f.addLine(t, p.ID, 4, "", "")
	f.confirm(t, p.ID)

	got, err := f.uc.Cancel(context.Background(), p.ID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCancelled, got.Status)
	require.Len(t, got.StockMoves, 1)
	assert.Equal(t, entity.StatusCancelled, got.StockMoves[0].Status)
	assert.True(t, f.store.quantity(f.product.ID, f.shelfA.ID).Equal(decimal.NewFromInt(10)), "cancelar nunca muta cantidades")
}

func TestCancel_DesdeTerminalFalla(t *testing.T) {
	f := newFixture()
	f.seedQuant(f.shelfA.ID, 10)

	p := f.createPicking(t, f.opInt.ID)
	f.addLine(t, p.ID, 1, "", "")
	f.confirm(t, p.ID)
	_, err := f.uc.Validate(context.Background(), p.ID, "user-1")
	require.NoError(t, err)

	_, err = f.uc.Cancel(context.Background(), p.ID, "user-1")
	var transition *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, entity.StatusDone, transition.Current)
}

func TestAddMove_SoloEnDraft(t *testing.T) {
	f := newFixture()
	p := f.createPicking(t, f.opInt.ID)
	f.confirm(t, p.ID)

	_, err := f.uc.AddMove(context.Background(), p.ID, dto.AddStockMoveRequest{
		ProductID: f.product.ID,
		Quantity:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddMove_CantidadInvalida(t *testing.T) {
	f := newFixture()
	p := f.createPicking(t, f.opInt.ID)

	_, err := f.uc.AddMove(context.Background(), p.ID, dto.AddStockMoveRequest{
		ProductID: f.product.ID,
		Quantity:  decimal.Zero,
	})
	var lineErr *domain.LineValidationError
	assert.ErrorAs(t, err, &lineErr)
}

func TestDelete_SoloDraftOCancelado(t *testing.T) {
	f := newFixture()
	f.seedQuant(f.shelfA.ID, 10)

	done := f.createPicking(t, f.opInt.ID)
	f.addLine(t, done.ID, 1, "", "")
	f.confirm(t, done.ID)
	_, err := f.uc.Validate(context.Background(), done.ID, "user-1")
	require.NoError(t, err)
	assert.ErrorIs(t, f.uc.Delete(context.Background(), done.ID), domain.ErrConflict)

	draft := f.createPicking(t, f.opInt.ID)
	f.addLine(t, draft.ID, 1, "", "")
	require.NoError(t, f.uc.Delete(context.Background(), draft.ID))

	got, err := f.uc.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	moves, _ := (&memMoves{f.store}).ListByPicking(draft.ID)
	assert.Empty(t, moves, "las líneas se eliminan con el picking")
}
