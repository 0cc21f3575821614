package repository

// SequenceRepository puerto para las secuencias de referencias de picking.
// Next incrementa y devuelve el siguiente número del prefijo de forma atómica
// (dentro de la transacción de creación del picking).
type SequenceRepository interface {
	Next(prefix string) (int64, error)
}
