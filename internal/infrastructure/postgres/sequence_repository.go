package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo secuencias de referencias de picking sobre PostgreSQL.
// El upsert incrementa y devuelve en una sola sentencia: corre dentro de la
// transacción de creación del picking, así dos creaciones concurrentes con el
// mismo prefijo nunca obtienen el mismo número.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador de secuencias. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el siguiente número del prefijo.
func (r *SequenceRepo) Next(prefix string) (int64, error) {
	query := `
		INSERT INTO reference_sequences (prefix, last_number)
		VALUES ($1, 1)
		ON CONFLICT (prefix) DO UPDATE SET last_number = reference_sequences.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, prefix).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", prefix, err)
	}
	return n, nil
}
