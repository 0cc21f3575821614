package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP de stock: consulta de cantidades,
// alertas y ajustes manuales (protegido).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar cantidades por (producto, ubicación)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.StockQuantResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	filter := repository.StockQuantFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual de inventario
// @Description  Aplica una delta con signo al stock de un producto en una ubicación y
//
//	registra el ajuste en el historial. Si location_id se omite, se usa la
//	ubicación de ajustes por defecto de la configuración.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, delta con signo, location_id y notes opcionales"
// @Success      200   {object}  dto.StockQuantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.Adjust(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Availability godoc
// @Summary      Cantidad disponible de un producto en una ubicación
// @Description  Cantidad a mano menos la reservada. Cero si el producto nunca
//
//	tuvo stock en esa ubicación.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  true  "Producto"
// @Param        location_id  query  string  true  "Ubicación"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/available [get]
func (h *StockHandler) Availability(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	locationID := c.Query("location_id")
	if productID == "" || locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y location_id son requeridos"})
	}
	available, err := h.uc.Available(c.Context(), productID, locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AvailabilityResponse{
		ProductID:         productID,
		LocationID:        locationID,
		AvailableQuantity: available,
	})
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  Cantidades disponibles positivas por debajo del umbral. Si no se pasa
//
//	threshold, se usa el de la configuración del almacén.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  number  false  "Umbral a usar en lugar del configurado"
// @Success      200  {array}  dto.StockQuantResponse
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	var threshold *decimal.Decimal
	if raw := c.Query("threshold"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold inválido"})
		}
		threshold = &d
	}
	out, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OutOfStock godoc
// @Summary      Productos sin stock disponible
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockQuantResponse
// @Router       /api/stock/out [get]
func (h *StockHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.uc.OutOfStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
