package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/search"
)

var _ repository.PickingRepository = (*PickingRepo)(nil)

// PickingRepo implementación de PickingRepository sobre PostgreSQL (usable con pool o tx).
type PickingRepo struct {
	q Querier
}

// NewPickingRepository construye el adaptador de pickings. Pasar pool o tx (Querier).
func NewPickingRepository(q Querier) *PickingRepo {
	return &PickingRepo{q: q}
}

const pickingColumns = `id, reference, COALESCE(partner, ''), operation_type_id,
	COALESCE(source_location_id::text, ''), COALESCE(destination_location_id::text, ''),
	status, scheduled_date, completion_date, COALESCE(notes, ''), COALESCE(created_by::text, ''),
	created_at, updated_at`

func scanPicking(row pgx.Row) (*entity.Picking, error) {
	var p entity.Picking
	err := row.Scan(
		&p.ID, &p.Reference, &p.Partner, &p.OperationTypeID,
		&p.SourceLocationID, &p.DestinationLocationID,
		&p.Status, &p.ScheduledDate, &p.CompletionDate, &p.Notes, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste una cabecera de picking nueva.
func (r *PickingRepo) Create(picking *entity.Picking) error {
	query := `
		INSERT INTO pickings (id, reference, partner, operation_type_id, source_location_id, destination_location_id,
		                      status, scheduled_date, completion_date, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, '')::uuid, NULLIF($6, '')::uuid, $7, $8, $9, NULLIF($10, ''), NULLIF($11, '')::uuid, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		picking.ID, picking.Reference, picking.Partner, picking.OperationTypeID,
		picking.SourceLocationID, picking.DestinationLocationID,
		picking.Status, picking.ScheduledDate, picking.CompletionDate, picking.Notes, picking.CreatedBy,
		picking.CreatedAt, picking.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert picking: %w", err)
	}
	return nil
}

// GetByID obtiene una cabecera por ID.
func (r *PickingRepo) GetByID(id string) (*entity.Picking, error) {
	query := `SELECT ` + pickingColumns + ` FROM pickings WHERE id = $1`
	p, err := scanPicking(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get picking: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene la cabecera y bloquea la fila (SELECT FOR UPDATE) para
// serializar transiciones de estado concurrentes.
func (r *PickingRepo) GetForUpdate(id string) (*entity.Picking, error) {
	query := `SELECT ` + pickingColumns + ` FROM pickings WHERE id = $1 FOR UPDATE`
	p, err := scanPicking(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get picking for update: %w", err)
	}
	return p, nil
}

// Update actualiza la cabecera completa.
func (r *PickingRepo) Update(picking *entity.Picking) error {
	query := `
		UPDATE pickings SET partner = NULLIF($2, ''), source_location_id = NULLIF($3, '')::uuid,
		       destination_location_id = NULLIF($4, '')::uuid, status = $5, scheduled_date = $6,
		       completion_date = $7, notes = NULLIF($8, ''), updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		picking.ID, picking.Partner, picking.SourceLocationID, picking.DestinationLocationID,
		picking.Status, picking.ScheduledDate, picking.CompletionDate, picking.Notes, picking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update picking: %w", err)
	}
	return nil
}

// Delete elimina una cabecera por ID. Las líneas las borra antes el caso de uso.
func (r *PickingRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM pickings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete picking: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista pickings con filtros y paginación, del más reciente al más antiguo.
func (r *PickingRepo) List(filter repository.PickingFilter) ([]*entity.Picking, error) {
	query := `SELECT ` + pickingColumns + ` FROM pickings WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Status != "" {
		n++
		query += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, filter.Status)
	}
	if filter.OperationTypeID != "" {
		n++
		query += fmt.Sprintf(" AND operation_type_id = $%d", n)
		args = append(args, filter.OperationTypeID)
	}
	if filter.Search != "" {
		n++
		query += fmt.Sprintf(" AND (lower(reference) LIKE $%d OR lower(COALESCE(partner, '')) LIKE $%d)", n, n)
		args = append(args, search.Like(filter.Search))
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limitOrDefault(filter.Limit), filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pickings: %w", err)
	}
	defer rows.Close()

	var out []*entity.Picking
	for rows.Next() {
		p, err := scanPicking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan picking: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
