package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL (usable con pool o tx).
// La tabla warehouse_settings tiene a lo sumo una fila (id fijo).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Fila única: mismo id siempre, el ON CONFLICT de Get la crea perezosamente.
const settingsRowID = "00000000-0000-0000-0000-000000000001"

// Get devuelve la configuración, creando la fila con valores por defecto si no existe.
func (r *SettingsRepo) Get() (*entity.WarehouseSettings, error) {
	query := `
		INSERT INTO warehouse_settings (id, low_stock_threshold, updated_at)
		VALUES ($1, 0, now())
		ON CONFLICT (id) DO UPDATE SET id = warehouse_settings.id
		RETURNING id, low_stock_threshold, COALESCE(default_receipt_location_id::text, ''),
		          COALESCE(default_delivery_location_id::text, ''), COALESCE(default_adjustment_location_id::text, ''),
		          updated_at, COALESCE(updated_by::text, '')`
	var s entity.WarehouseSettings
	err := r.q.QueryRow(context.Background(), query, settingsRowID).Scan(
		&s.ID, &s.LowStockThreshold, &s.DefaultReceiptLocationID,
		&s.DefaultDeliveryLocationID, &s.DefaultAdjustmentLocID,
		&s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("get warehouse settings: %w", err)
	}
	return &s, nil
}

// Update persiste la configuración completa.
func (r *SettingsRepo) Update(settings *entity.WarehouseSettings) error {
	query := `
		UPDATE warehouse_settings SET low_stock_threshold = $2,
		       default_receipt_location_id = NULLIF($3, '')::uuid,
		       default_delivery_location_id = NULLIF($4, '')::uuid,
		       default_adjustment_location_id = NULLIF($5, '')::uuid,
		       updated_at = $6, updated_by = NULLIF($7, '')::uuid
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		settingsRowID, settings.LowStockThreshold,
		settings.DefaultReceiptLocationID, settings.DefaultDeliveryLocationID, settings.DefaultAdjustmentLocID,
		settings.UpdatedAt, settings.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update warehouse settings: %w", err)
	}
	return nil
}
