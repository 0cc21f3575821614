package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// OperationTypeHandler maneja las peticiones HTTP para OperationType (protegido).
type OperationTypeHandler struct {
	uc *usecase.OperationTypeUseCase
}

// NewOperationTypeHandler construye el handler.
func NewOperationTypeHandler(uc *usecase.OperationTypeUseCase) *OperationTypeHandler {
	return &OperationTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de operación
// @Tags         operation-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperationTypeRequest  true  "Datos del tipo de operación"
// @Success      201   {object}  dto.OperationTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/operation-types [post]
func (h *OperationTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Code == "" || in.SequencePrefix == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, code y sequence_prefix son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de operación por ID
// @Tags         operation-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo de operación"
// @Success      200  {object}  dto.OperationTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operation-types/{id} [get]
func (h *OperationTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de operación no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de operación
// @Tags         operation-types
// @Security     Bearer
// @Produce      json
// @Param        code    query  string  false  "Filtrar por código (incoming, outgoing, internal, manufacturing)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.OperationTypeListResponse
// @Router       /api/operation-types [get]
func (h *OperationTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("code"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de operación
// @Tags         operation-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo de operación"
// @Param        body  body  dto.UpdateOperationTypeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OperationTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operation-types/{id} [put]
func (h *OperationTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOperationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de operación no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de operación
// @Tags         operation-types
// @Security     Bearer
// @Param        id   path  string  true  "ID del tipo de operación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operation-types/{id} [delete]
func (h *OperationTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
