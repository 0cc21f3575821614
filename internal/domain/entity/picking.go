package entity

import "time"

// Estados de un picking. Las transiciones son monótonas salvo la cancelación,
// alcanzable desde cualquier estado no terminal. done y cancelled son terminales.
const (
	StatusDraft      = "draft"
	StatusConfirmed  = "confirmed"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// Picking cabecera de una operación de almacén (recepción, entrega o traslado).
// Es la raíz del agregado: posee en exclusiva su colección ordenada de StockMove;
// una línea solo se crea o elimina a través del picking y mientras está en draft.
type Picking struct {
	ID                    string
	Reference             string // única, generada como <prefijo><secuencia 5 dígitos>
	Partner               string
	OperationTypeID       string
	SourceLocationID      string
	DestinationLocationID string
	Status                string
	ScheduledDate         time.Time
	CompletionDate        *time.Time
	Notes                 string
	CreatedBy             string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsTerminal indica si status es un estado terminal (done o cancelled).
func IsTerminal(status string) bool {
	return status == StatusDone || status == StatusCancelled
}

// CanConfirm solo desde draft.
func (p *Picking) CanConfirm() bool {
	return p.Status == StatusDraft
}

// CanValidate acepta cualquier estado pre-done no cancelado posterior a draft,
// para tolerar flujos parciales (confirmed, assigned, in_progress).
func (p *Picking) CanValidate() bool {
	switch p.Status {
	case StatusConfirmed, StatusAssigned, StatusInProgress:
		return true
	}
	return false
}

// CanCancel desde cualquier estado no terminal.
func (p *Picking) CanCancel() bool {
	return !IsTerminal(p.Status)
}
