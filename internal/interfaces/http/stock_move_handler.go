package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// StockMoveHandler consulta de solo lectura de líneas de picking (protegido).
type StockMoveHandler struct {
	uc *usecase.StockMoveUseCase
}

// NewStockMoveHandler construye el handler.
func NewStockMoveHandler(uc *usecase.StockMoveUseCase) *StockMoveHandler {
	return &StockMoveHandler{uc: uc}
}

// List godoc
// @Summary      Listar líneas de picking
// @Tags         stock-moves
// @Security     Bearer
// @Produce      json
// @Param        picking_id  query  string  false  "Filtrar por picking"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        status      query  string  false  "Filtrar por estado"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.StockMoveResponse
// @Router       /api/stock-moves [get]
func (h *StockMoveHandler) List(c *fiber.Ctx) error {
	filter := repository.StockMoveFilter{
		PickingID: c.Query("picking_id"),
		ProductID: c.Query("product_id"),
		Status:    c.Query("status"),
		Limit:     c.QueryInt("limit", 20),
		Offset:    c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea por ID
// @Tags         stock-moves
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.StockMoveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-moves/{id} [get]
func (h *StockMoveHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
	}
	return c.JSON(out)
}
