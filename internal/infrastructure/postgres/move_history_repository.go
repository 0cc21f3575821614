package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.MoveHistoryRepository = (*MoveHistoryRepo)(nil)

// MoveHistoryRepo implementación de MoveHistoryRepository sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lista: el log de auditoría es append-only.
type MoveHistoryRepo struct {
	q Querier
}

// NewMoveHistoryRepository construye el adaptador del historial. Pasar pool o tx (Querier).
func NewMoveHistoryRepository(q Querier) *MoveHistoryRepo {
	return &MoveHistoryRepo{q: q}
}

const moveHistoryColumns = `id, ts, COALESCE(user_id::text, ''), action_type,
	COALESCE(picking_id::text, ''), COALESCE(product_id::text, ''), quantity,
	COALESCE(source_location_id::text, ''), COALESCE(destination_location_id::text, ''),
	COALESCE(old_status, ''), COALESCE(new_status, ''), COALESCE(notes, '')`

func scanMoveHistory(row pgx.Row) (*entity.MoveHistory, error) {
	var h entity.MoveHistory
	err := row.Scan(
		&h.ID, &h.Timestamp, &h.UserID, &h.ActionType,
		&h.PickingID, &h.ProductID, &h.Quantity,
		&h.SourceLocationID, &h.DestinationLocationID,
		&h.OldStatus, &h.NewStatus, &h.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserta un registro del historial. El id lo genera la base
// (gen_random_uuid(), como en stock_quants) y el timestamp lo pone now():
// los casos de uso no rellenan ninguno de los dos.
func (r *MoveHistoryRepo) Create(record *entity.MoveHistory) error {
	query := `
		INSERT INTO move_history (id, ts, user_id, action_type, picking_id, product_id, quantity,
		                          source_location_id, destination_location_id, old_status, new_status, notes)
		VALUES (gen_random_uuid(), now(), NULLIF($1, '')::uuid, $2, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid, $5,
		        NULLIF($6, '')::uuid, NULLIF($7, '')::uuid, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))`
	_, err := r.q.Exec(context.Background(), query,
		record.UserID, record.ActionType, record.PickingID, record.ProductID, record.Quantity,
		record.SourceLocationID, record.DestinationLocationID, record.OldStatus, record.NewStatus, record.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert move history: %w", err)
	}
	return nil
}

// List lista registros del historial con filtros, del más reciente al más antiguo.
func (r *MoveHistoryRepo) List(filter repository.MoveHistoryFilter) ([]*entity.MoveHistory, error) {
	query := `SELECT ` + moveHistoryColumns + ` FROM move_history WHERE 1=1`
	args := []any{}
	n := 0
	if filter.ActionType != "" {
		n++
		query += fmt.Sprintf(" AND action_type = $%d", n)
		args = append(args, filter.ActionType)
	}
	if filter.PickingID != "" {
		n++
		query += fmt.Sprintf(" AND picking_id = $%d", n)
		args = append(args, filter.PickingID)
	}
	if filter.ProductID != "" {
		n++
		query += fmt.Sprintf(" AND product_id = $%d", n)
		args = append(args, filter.ProductID)
	}
	if filter.From != nil {
		n++
		query += fmt.Sprintf(" AND ts >= $%d", n)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		n++
		query += fmt.Sprintf(" AND ts <= $%d", n)
		args = append(args, *filter.To)
	}
	query += fmt.Sprintf(" ORDER BY ts DESC, id DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limitOrDefault(filter.Limit), filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list move history: %w", err)
	}
	defer rows.Close()

	var out []*entity.MoveHistory
	for rows.Next() {
		h, err := scanMoveHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan move history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
