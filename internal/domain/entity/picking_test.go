package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// Tabla de transiciones del picking: qué guardas habilita cada estado.
// done y cancelled son terminales y no habilitan ninguna.
func TestPicking_Transiciones(t *testing.T) {
	cases := []struct {
		status      string
		canConfirm  bool
		canValidate bool
		canCancel   bool
		terminal    bool
	}{
		{entity.StatusDraft, true, false, true, false},
		{entity.StatusConfirmed, false, true, true, false},
		{entity.StatusAssigned, false, true, true, false},
		{entity.StatusInProgress, false, true, true, false},
		{entity.StatusDone, false, false, false, true},
		{entity.StatusCancelled, false, false, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			p := &entity.Picking{Status: tc.status}
			assert.Equal(t, tc.canConfirm, p.CanConfirm(), "CanConfirm")
			assert.Equal(t, tc.canValidate, p.CanValidate(), "CanValidate")
			assert.Equal(t, tc.canCancel, p.CanCancel(), "CanCancel")
			assert.Equal(t, tc.terminal, entity.IsTerminal(tc.status), "IsTerminal")
		})
	}
}

func TestStockMove_Validate(t *testing.T) {
	valid := &entity.StockMove{ProductID: "p1", Quantity: decimal.NewFromInt(3)}
	assert.NoError(t, valid.Validate())

	var lineErr *domain.LineValidationError

	sinProducto := &entity.StockMove{Quantity: decimal.NewFromInt(3)}
	err := sinProducto.Validate()
	assert.ErrorAs(t, err, &lineErr)
	assert.Equal(t, "product_id", lineErr.Field)

	cantidadCero := &entity.StockMove{ProductID: "p1", Quantity: decimal.Zero}
	err = cantidadCero.Validate()
	assert.ErrorAs(t, err, &lineErr)
	assert.Equal(t, "quantity", lineErr.Field)

	cantidadNegativa := &entity.StockMove{ProductID: "p1", Quantity: decimal.NewFromInt(-1)}
	assert.Error(t, cantidadNegativa.Validate())
}

// customer y supplier no materializan quants; transit materializa pero no exige
// disponibilidad; internal, production e inventory exigen ambas cosas.
func TestLocation_SemanticaPorTipoDeUso(t *testing.T) {
	cases := []struct {
		usage    string
		tracks   bool
		enforces bool
	}{
		{entity.UsageInternal, true, true},
		{entity.UsageProduction, true, true},
		{entity.UsageInventory, true, true},
		{entity.UsageTransit, true, false},
		{entity.UsageCustomer, false, false},
		{entity.UsageSupplier, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.usage, func(t *testing.T) {
			l := &entity.Location{UsageType: tc.usage}
			assert.Equal(t, tc.tracks, l.TracksQuantity(), "TracksQuantity")
			assert.Equal(t, tc.enforces, l.EnforcesAvailability(), "EnforcesAvailability")
		})
	}
}

func TestStockQuant_Available(t *testing.T) {
	q := &entity.StockQuant{
		Quantity:         decimal.NewFromInt(10),
		ReservedQuantity: decimal.NewFromInt(3),
	}
	assert.True(t, q.Available().Equal(decimal.NewFromInt(7)))
}
