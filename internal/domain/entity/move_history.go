package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de acción del historial de movimientos.
const (
	ActionStockMove    = "stock_move"    // línea validada: movió cantidad entre ubicaciones
	ActionStatusChange = "status_change" // cambio de estado de un picking
	ActionAdjustment   = "adjustment"    // ajuste manual de inventario
)

// MoveHistory registro inmutable del log de auditoría. Se crea una vez por mutación
// significativa (movimiento de stock, cambio de estado, ajuste) y nunca se actualiza
// ni elimina. El timestamp lo genera el servidor.
type MoveHistory struct {
	ID                    string
	Timestamp             time.Time
	UserID                string
	ActionType            string
	PickingID             string
	ProductID             string
	Quantity              *decimal.Decimal
	SourceLocationID      string
	DestinationLocationID string
	OldStatus             string
	NewStatus             string
	Notes                 string
}
