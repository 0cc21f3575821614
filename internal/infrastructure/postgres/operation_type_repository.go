package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.OperationTypeRepository = (*OperationTypeRepo)(nil)

// OperationTypeRepo implementación de OperationTypeRepository sobre PostgreSQL (usable con pool o tx).
type OperationTypeRepo struct {
	q Querier
}

// NewOperationTypeRepository construye el adaptador de tipos de operación. Pasar pool o tx (Querier).
func NewOperationTypeRepository(q Querier) *OperationTypeRepo {
	return &OperationTypeRepo{q: q}
}

const operationTypeColumns = `id, name, code, sequence_prefix, COALESCE(description, ''),
	COALESCE(default_source_location_id::text, ''), COALESCE(default_destination_location_id::text, ''),
	created_at, updated_at`

func scanOperationType(row pgx.Row) (*entity.OperationType, error) {
	var ot entity.OperationType
	err := row.Scan(
		&ot.ID, &ot.Name, &ot.Code, &ot.SequencePrefix, &ot.Description,
		&ot.DefaultSourceLocationID, &ot.DefaultDestinationLocID, &ot.CreatedAt, &ot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ot, nil
}

// Create persiste un tipo de operación nuevo.
func (r *OperationTypeRepo) Create(opType *entity.OperationType) error {
	query := `
		INSERT INTO operation_types (id, name, code, sequence_prefix, description, default_source_location_id, default_destination_location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, '')::uuid, NULLIF($7, '')::uuid, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		opType.ID, opType.Name, opType.Code, opType.SequencePrefix, opType.Description,
		opType.DefaultSourceLocationID, opType.DefaultDestinationLocID, opType.CreatedAt, opType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert operation type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de operación por ID.
func (r *OperationTypeRepo) GetByID(id string) (*entity.OperationType, error) {
	query := `SELECT ` + operationTypeColumns + ` FROM operation_types WHERE id = $1`
	ot, err := scanOperationType(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation type: %w", err)
	}
	return ot, nil
}

// Update actualiza un tipo de operación existente.
func (r *OperationTypeRepo) Update(opType *entity.OperationType) error {
	query := `
		UPDATE operation_types SET name = $2, code = $3, sequence_prefix = $4, description = NULLIF($5, ''),
		       default_source_location_id = NULLIF($6, '')::uuid, default_destination_location_id = NULLIF($7, '')::uuid, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		opType.ID, opType.Name, opType.Code, opType.SequencePrefix, opType.Description,
		opType.DefaultSourceLocationID, opType.DefaultDestinationLocID, opType.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update operation type: %w", err)
	}
	return nil
}

// Delete elimina un tipo de operación por ID.
func (r *OperationTypeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM operation_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete operation type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista tipos de operación, opcionalmente filtrados por código.
func (r *OperationTypeRepo) List(code string, limit, offset int) ([]*entity.OperationType, error) {
	query := `SELECT ` + operationTypeColumns + ` FROM operation_types WHERE 1=1`
	args := []any{}
	n := 0
	if code != "" {
		n++
		query += fmt.Sprintf(" AND code = $%d", n)
		args = append(args, code)
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limitOrDefault(limit), offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operation types: %w", err)
	}
	defer rows.Close()

	var out []*entity.OperationType
	for rows.Next() {
		ot, err := scanOperationType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operation type: %w", err)
		}
		out = append(out, ot)
	}
	return out, rows.Err()
}
