package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
)

// soloLecturaQuants implementa el puerto de quants con un único registro fijo;
// la consulta de disponibilidad solo necesita Get.
type soloLecturaQuants struct {
	quant *entity.StockQuant
}

func (r *soloLecturaQuants) Get(productID, locationID string) (*entity.StockQuant, error) {
	if r.quant != nil && r.quant.ProductID == productID && r.quant.LocationID == locationID {
		cp := *r.quant
		return &cp, nil
	}
	return nil, nil
}

func (r *soloLecturaQuants) GetForUpdate(productID, locationID string) (*entity.StockQuant, error) {
	return r.Get(productID, locationID)
}

func (r *soloLecturaQuants) ApplyDelta(string, string, decimal.Decimal) (*entity.StockQuant, error) {
	return nil, nil
}

func (r *soloLecturaQuants) List(repository.StockQuantFilter) ([]*entity.StockQuant, error) {
	return nil, nil
}

func (r *soloLecturaQuants) LowStock(decimal.Decimal) ([]*entity.StockQuant, error) {
	return nil, nil
}

func (r *soloLecturaQuants) OutOfStock() ([]*entity.StockQuant, error) {
	return nil, nil
}

func availabilityApp(quant *entity.StockQuant) *fiber.App {
	uc := inventory.NewStockUseCase(nil, &soloLecturaQuants{quant: quant}, nil, nil, nil)
	handler := apphttp.NewStockHandler(uc)
	app := fiber.New()
	app.Get("/api/stock/available", handler.Availability)
	return app
}

func TestAvailability_DescuentaReservas(t *testing.T) {
	qty := decimal.NewFromInt(10)
	reserved := decimal.NewFromInt(3)
	app := availabilityApp(&entity.StockQuant{
		ProductID:        "prod-1",
		LocationID:       "loc-1",
		Quantity:         qty,
		ReservedQuantity: reserved,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stock/available?product_id=prod-1&location_id=loc-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AvailabilityResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "prod-1", out.ProductID)
	assert.Equal(t, "loc-1", out.LocationID)
	assert.True(t, out.AvailableQuantity.Equal(decimal.NewFromInt(7)))
}

// Sin registro de stock la disponibilidad es cero, no un 404.
func TestAvailability_SinRegistroEsCero(t *testing.T) {
	app := availabilityApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stock/available?product_id=prod-1&location_id=loc-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AvailabilityResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.AvailableQuantity.IsZero())
}

func TestAvailability_ParametrosRequeridos(t *testing.T) {
	app := availabilityApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stock/available?product_id=prod-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "VALIDATION", out.Code)
}
