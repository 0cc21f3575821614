package entity

import "time"

// Códigos de operación.
const (
	OperationIncoming      = "incoming"
	OperationOutgoing      = "outgoing"
	OperationInternal      = "internal"
	OperationManufacturing = "manufacturing"
)

// OperationType plantilla de operación: define ubicaciones origen/destino por defecto
// y el prefijo de la secuencia de referencias (ej. IN, OUT, INT).
type OperationType struct {
	ID                       string
	Name                     string
	Code                     string
	SequencePrefix           string
	Description              string
	DefaultSourceLocationID  string
	DefaultDestinationLocID  string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// ValidOperationCode indica si s es uno de los códigos de operación conocidos.
func ValidOperationCode(s string) bool {
	switch s {
	case OperationIncoming, OperationOutgoing, OperationInternal, OperationManufacturing:
		return true
	}
	return false
}
