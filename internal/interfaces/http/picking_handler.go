package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// PickingHandler maneja las peticiones HTTP de pickings: CRUD, líneas,
// transiciones de estado y documento PDF (protegido).
type PickingHandler struct {
	uc   *inventory.PickingUseCase
	slip *inventory.SlipUseCase
}

// NewPickingHandler construye el handler.
func NewPickingHandler(uc *inventory.PickingUseCase, slip *inventory.SlipUseCase) *PickingHandler {
	return &PickingHandler{uc: uc, slip: slip}
}

// Create godoc
// @Summary      Crear picking (draft)
// @Description  Genera la referencia a partir del prefijo del tipo de operación y resuelve
//
//	ubicaciones por defecto desde el tipo de operación o la configuración.
//
// @Tags         pickings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePickingRequest  true  "Datos del picking"
// @Success      201   {object}  dto.PickingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pickings [post]
func (h *PickingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePickingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OperationTypeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "operation_type_id es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener picking por ID con sus líneas
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {object}  dto.PickingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id} [get]
func (h *PickingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "picking no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pickings
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        status             query  string  false  "Filtrar por estado"
// @Param        operation_type_id  query  string  false  "Filtrar por tipo de operación"
// @Param        search             query  string  false  "Búsqueda parcial por referencia o partner"
// @Param        limit              query  int     false  "Límite"   default(20)
// @Param        offset             query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PickingListResponse
// @Router       /api/pickings [get]
func (h *PickingHandler) List(c *fiber.Ctx) error {
	filter := repository.PickingFilter{
		Status:          c.Query("status"),
		OperationTypeID: c.Query("operation_type_id"),
		Search:          c.Query("search"),
		Limit:           c.QueryInt("limit", 20),
		Offset:          c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cabecera del picking (solo en draft)
// @Tags         pickings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del picking"
// @Param        body  body  dto.UpdatePickingRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PickingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pickings/{id} [put]
func (h *PickingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePickingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "picking no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar picking (solo draft o cancelled)
// @Tags         pickings
// @Security     Bearer
// @Param        id   path  string  true  "ID del picking"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id} [delete]
func (h *PickingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddMove godoc
// @Summary      Agregar línea al picking (solo en draft)
// @Tags         pickings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del picking"
// @Param        body  body  dto.AddStockMoveRequest  true  "Línea: producto, cantidad y ruta opcional"
// @Success      201   {object}  dto.StockMoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/moves [post]
func (h *PickingHandler) AddMove(c *fiber.Ctx) error {
	var in dto.AddStockMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddMove(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveMove godoc
// @Summary      Eliminar línea del picking (solo en draft)
// @Tags         pickings
// @Security     Bearer
// @Param        id      path  string  true  "ID del picking"
// @Param        moveId  path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/moves/{moveId} [delete]
func (h *PickingHandler) RemoveMove(c *fiber.Ctx) error {
	if err := h.uc.RemoveMove(c.Context(), c.Params("id"), c.Params("moveId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Confirm godoc
// @Summary      Confirmar picking (draft → confirmed)
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {object}  dto.PickingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/confirm [post]
func (h *PickingHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.uc.Confirm(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar picking (→ done)
// @Description  Aplica todas las líneas al stock de forma atómica: verifica disponibilidad,
//
//	actualiza cantidades por ubicación y registra el historial. Si una línea
//	falla, ninguna se aplica.
//
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {object}  dto.PickingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/validate [post]
func (h *PickingHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar picking (estado no terminal → cancelled)
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {object}  dto.PickingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/cancel [post]
func (h *PickingHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar documento del picking en PDF
// @Tags         pickings
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/pdf [get]
func (h *PickingHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, err := h.slip.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="picking.pdf"`)
	return c.Send(pdfBytes)
}
