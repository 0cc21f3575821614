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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, name, COALESCE(parent_id::text, ''), COALESCE(barcode, ''), usage_type, is_active, created_at, updated_at`

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	err := row.Scan(&l.ID, &l.Name, &l.ParentID, &l.Barcode, &l.UsageType, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste una ubicación nueva.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, parent_id, barcode, usage_type, is_active, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, NULLIF($4, ''), $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.ParentID, location.Barcode,
		location.UsageType, location.IsActive, location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	l, err := scanLocation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// GetByIDs obtiene varias ubicaciones en una consulta, indexadas por ID.
// Las que no existen simplemente no aparecen en el mapa.
func (r *LocationRepo) GetByIDs(ids []string) (map[string]*entity.Location, error) {
	out := make(map[string]*entity.Location, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get locations by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out[l.ID] = l
	}
	return out, rows.Err()
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, parent_id = NULLIF($3, '')::uuid, barcode = NULLIF($4, ''),
		       usage_type = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.ParentID, location.Barcode,
		location.UsageType, location.IsActive, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ubicaciones con filtros y paginación.
func (r *LocationRepo) List(filter repository.LocationFilter) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Search != "" {
		n++
		query += fmt.Sprintf(" AND (lower(name) LIKE $%d OR lower(COALESCE(barcode, '')) LIKE $%d)", n, n)
		args = append(args, search.Like(filter.Search))
	}
	if filter.UsageType != "" {
		n++
		query += fmt.Sprintf(" AND usage_type = $%d", n)
		args = append(args, filter.UsageType)
	}
	if filter.ActiveOnly {
		query += " AND is_active"
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limitOrDefault(filter.Limit), filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListChildren lista las ubicaciones hijas directas de parentID.
func (r *LocationRepo) ListChildren(parentID string) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE parent_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list location children: %w", err)
	}
	defer rows.Close()

	var out []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
