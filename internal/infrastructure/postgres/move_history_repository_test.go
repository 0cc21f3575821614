package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
)

// capturaQuerier guarda el SQL y los argumentos del último Exec para
// inspeccionarlos sin base de datos.
type capturaQuerier struct {
	sql  string
	args []any
}

func (q *capturaQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql = sql
	q.args = args
	return pgconn.CommandTag{}, nil
}

func (q *capturaQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *capturaQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

// La columna id de move_history no tiene DEFAULT y los casos de uso no
// rellenan el campo ID: el INSERT debe generar el uuid en la base y nunca
// enlazar el ID del registro como parámetro.
func TestMoveHistoryCreate_GeneraElIDEnLaBase(t *testing.T) {
	q := &capturaQuerier{}
	repo := postgres.NewMoveHistoryRepository(q)

	// Registro tal como lo arma un cambio de estado: sin ID ni timestamp.
	err := repo.Create(&entity.MoveHistory{
		UserID:     "9f1c2d3e-0000-0000-0000-000000000001",
		ActionType: entity.ActionStatusChange,
		PickingID:  "9f1c2d3e-0000-0000-0000-000000000002",
		OldStatus:  entity.StatusDraft,
		NewStatus:  entity.StatusConfirmed,
		Notes:      "picking IN00001: draft → confirmed",
	})
	require.NoError(t, err)

	assert.Contains(t, q.sql, "gen_random_uuid()")
	require.Len(t, q.args, 10)
	assert.Equal(t, "9f1c2d3e-0000-0000-0000-000000000001", q.args[0],
		"el primer parámetro debe ser user_id, no un id vacío")
	assert.Equal(t, entity.ActionStatusChange, q.args[1])
}

// Una línea validada lleva cantidad y ubicaciones; los campos opcionales
// vacíos (old/new status) viajan como cadena vacía y el SQL los anula.
func TestMoveHistoryCreate_LineaValidada(t *testing.T) {
	q := &capturaQuerier{}
	repo := postgres.NewMoveHistoryRepository(q)

	qty := decimal.NewFromInt(4)
	err := repo.Create(&entity.MoveHistory{
		UserID:                "9f1c2d3e-0000-0000-0000-000000000001",
		ActionType:            entity.ActionStockMove,
		PickingID:             "9f1c2d3e-0000-0000-0000-000000000002",
		ProductID:             "9f1c2d3e-0000-0000-0000-000000000003",
		Quantity:              &qty,
		SourceLocationID:      "9f1c2d3e-0000-0000-0000-000000000004",
		DestinationLocationID: "9f1c2d3e-0000-0000-0000-000000000005",
		Notes:                 "línea validada",
	})
	require.NoError(t, err)

	require.Len(t, q.args, 10)
	assert.Equal(t, entity.ActionStockMove, q.args[1])
	assert.Equal(t, &qty, q.args[4])
	assert.Equal(t, "", q.args[7], "old_status vacío se anula con NULLIF")
	assert.False(t, strings.Contains(q.sql, "$11"), "el id no se enlaza como parámetro")
}
