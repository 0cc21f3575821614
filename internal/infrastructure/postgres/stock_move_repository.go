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

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementación de StockMoveRepository sobre PostgreSQL (usable con pool o tx).
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador de líneas de picking. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

const stockMoveColumns = `id, picking_id, product_id, quantity,
	COALESCE(source_location_id::text, ''), COALESCE(destination_location_id::text, ''),
	status, COALESCE(notes, ''), created_at, updated_at`

func scanStockMove(row pgx.Row) (*entity.StockMove, error) {
	var m entity.StockMove
	err := row.Scan(
		&m.ID, &m.PickingID, &m.ProductID, &m.Quantity,
		&m.SourceLocationID, &m.DestinationLocationID,
		&m.Status, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste una línea nueva.
func (r *StockMoveRepo) Create(move *entity.StockMove) error {
	query := `
		INSERT INTO stock_moves (id, picking_id, product_id, quantity, source_location_id, destination_location_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NULLIF($6, '')::uuid, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.PickingID, move.ProductID, move.Quantity,
		move.SourceLocationID, move.DestinationLocationID, move.Status, move.Notes,
		move.CreatedAt, move.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *StockMoveRepo) GetByID(id string) (*entity.StockMove, error) {
	query := `SELECT ` + stockMoveColumns + ` FROM stock_moves WHERE id = $1`
	m, err := scanStockMove(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock move: %w", err)
	}
	return m, nil
}

// ListByPicking lista las líneas de un picking en orden de inserción.
func (r *StockMoveRepo) ListByPicking(pickingID string) ([]*entity.StockMove, error) {
	query := `SELECT ` + stockMoveColumns + ` FROM stock_moves WHERE picking_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, pickingID)
	if err != nil {
		return nil, fmt.Errorf("list stock moves by picking: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMove
	for rows.Next() {
		m, err := scanStockMove(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateStatus actualiza el estado de una línea.
func (r *StockMoveRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_moves SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update stock move status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatusByPicking actualiza el estado de todas las líneas de un picking.
func (r *StockMoveRepo) UpdateStatusByPicking(pickingID, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_moves SET status = $2, updated_at = now() WHERE picking_id = $1`, pickingID, status)
	if err != nil {
		return fmt.Errorf("update stock moves status by picking: %w", err)
	}
	return nil
}

// Delete elimina una línea por ID.
func (r *StockMoveRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_moves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock move: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista líneas con filtros y paginación.
func (r *StockMoveRepo) List(filter repository.StockMoveFilter) ([]*entity.StockMove, error) {
	query := `SELECT ` + stockMoveColumns + ` FROM stock_moves WHERE 1=1`
	args := []any{}
	n := 0
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
	if filter.Status != "" {
		n++
		query += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, filter.Status)
	}
	query += fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limitOrDefault(filter.Limit), filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMove
	for rows.Next() {
		m, err := scanStockMove(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
