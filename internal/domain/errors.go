package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas más allá de decimal).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// InvalidTransitionError indica una transición de estado no permitida sobre un picking
// (ej. confirmar un picking que no está en draft, o cancelar uno ya terminado).
type InvalidTransitionError struct {
	PickingID string
	Current   string // estado actual
	Attempted string // estado destino solicitado
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición inválida: picking %s en estado %q no admite %q", e.PickingID, e.Current, e.Attempted)
}

// InsufficientStockError indica que una ubicación origen no tiene cantidad disponible
// suficiente para cubrir una línea. Lleva el detalle completo para que el caller
// pueda mostrar "requerido X, disponible Y en Z".
type InsufficientStockError struct {
	ProductID  string
	LocationID string
	Required   decimal.Decimal
	Available  decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: producto %s en ubicación %s (requerido %s, disponible %s)",
		e.ProductID, e.LocationID, e.Required.String(), e.Available.String())
}

// NegativeStockError es la segunda barrera del ledger: no debería dispararse si la
// verificación de disponibilidad ocurre primero, pero protege el invariante
// quantity >= 0 en ubicaciones con seguimiento.
type NegativeStockError struct {
	ProductID  string
	LocationID string
	Resulting  decimal.Decimal
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("stock negativo: producto %s en ubicación %s quedaría en %s",
		e.ProductID, e.LocationID, e.Resulting.String())
}

// LineValidationError indica una línea malformada (cantidad <= 0 o producto ausente),
// detectada antes de tocar el ledger o el historial.
type LineValidationError struct {
	MoveID string
	Field  string
	Reason string
}

func (e *LineValidationError) Error() string {
	return fmt.Sprintf("línea %s inválida: %s %s", e.MoveID, e.Field, e.Reason)
}
