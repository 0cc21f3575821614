package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockQuantRepository = (*StockQuantRepo)(nil)

// StockQuantRepo implementación de StockQuantRepository sobre PostgreSQL (usable con pool o tx).
type StockQuantRepo struct {
	q Querier
}

// NewStockQuantRepository construye el adaptador de quants. Pasar pool o tx (Querier).
func NewStockQuantRepository(q Querier) *StockQuantRepo {
	return &StockQuantRepo{q: q}
}

const stockQuantColumns = `id, product_id, location_id, quantity, reserved_quantity, created_at, updated_at`

func scanStockQuant(row pgx.Row) (*entity.StockQuant, error) {
	var s entity.StockQuant
	err := row.Scan(&s.ID, &s.ProductID, &s.LocationID, &s.Quantity, &s.ReservedQuantity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// zeroQuant sin fila = sin stock: se devuelve un quant en cero, no un error.
func zeroQuant(productID, locationID string) *entity.StockQuant {
	return &entity.StockQuant{
		ProductID:        productID,
		LocationID:       locationID,
		Quantity:         decimal.Zero,
		ReservedQuantity: decimal.Zero,
	}
}

// Get obtiene la cantidad de un producto en una ubicación.
func (r *StockQuantRepo) Get(productID, locationID string) (*entity.StockQuant, error) {
	query := `SELECT ` + stockQuantColumns + ` FROM stock_quants WHERE product_id = $1 AND location_id = $2`
	s, err := scanStockQuant(r.q.QueryRow(context.Background(), query, productID, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroQuant(productID, locationID), nil
		}
		return nil, fmt.Errorf("get stock quant: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene la cantidad y bloquea la fila (SELECT FOR UPDATE).
func (r *StockQuantRepo) GetForUpdate(productID, locationID string) (*entity.StockQuant, error) {
	query := `SELECT ` + stockQuantColumns + ` FROM stock_quants WHERE product_id = $1 AND location_id = $2 FOR UPDATE`
	s, err := scanStockQuant(r.q.QueryRow(context.Background(), query, productID, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroQuant(productID, locationID), nil
		}
		return nil, fmt.Errorf("get stock quant for update: %w", err)
	}
	return s, nil
}

// ApplyDelta crea la fila con la delta si no existe y si existe suma la delta de
// forma atómica (upsert aditivo). Devuelve el quant resultante.
func (r *StockQuantRepo) ApplyDelta(productID, locationID string, delta decimal.Decimal) (*entity.StockQuant, error) {
	query := `
		INSERT INTO stock_quants (id, product_id, location_id, quantity, reserved_quantity, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, 0, now(), now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = stock_quants.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING ` + stockQuantColumns
	s, err := scanStockQuant(r.q.QueryRow(context.Background(), query, productID, locationID, delta))
	if err != nil {
		return nil, fmt.Errorf("apply stock delta: %w", err)
	}
	return s, nil
}

// List lista quants con filtros y paginación.
func (r *StockQuantRepo) List(filter repository.StockQuantFilter) ([]*entity.StockQuant, error) {
	query := `SELECT ` + stockQuantColumns + ` FROM stock_quants WHERE 1=1`
	args := []any{}
	n := 0
	if filter.ProductID != "" {
		n++
		query += fmt.Sprintf(" AND product_id = $%d", n)
		args = append(args, filter.ProductID)
	}
	if filter.LocationID != "" {
		n++
		query += fmt.Sprintf(" AND location_id = $%d", n)
		args = append(args, filter.LocationID)
	}
	query += fmt.Sprintf(" ORDER BY product_id, location_id LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limitOrDefault(filter.Limit), filter.Offset)

	return r.queryQuants(query, args...)
}

// LowStock lista quants con disponible positivo por debajo del umbral.
func (r *StockQuantRepo) LowStock(threshold decimal.Decimal) ([]*entity.StockQuant, error) {
	query := `
		SELECT ` + stockQuantColumns + ` FROM stock_quants
		WHERE quantity - reserved_quantity > 0 AND quantity - reserved_quantity < $1
		ORDER BY quantity - reserved_quantity`
	return r.queryQuants(query, threshold)
}

// OutOfStock lista quants con disponible menor o igual a cero.
func (r *StockQuantRepo) OutOfStock() ([]*entity.StockQuant, error) {
	query := `
		SELECT ` + stockQuantColumns + ` FROM stock_quants
		WHERE quantity - reserved_quantity <= 0
		ORDER BY product_id, location_id`
	return r.queryQuants(query)
}

func (r *StockQuantRepo) queryQuants(query string, args ...any) ([]*entity.StockQuant, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stock quants: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockQuant
	for rows.Next() {
		s, err := scanStockQuant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock quant: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
