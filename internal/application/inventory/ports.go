package inventory

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
// Todo lo que el motor toca durante una transición (cabecera, líneas, quants,
// historial, secuencias) se confirma o revierte en bloque.
type TxRepos struct {
	Pickings  repository.PickingRepository
	Moves     repository.StockMoveRepository
	Quants    repository.StockQuantRepository
	History   repository.MoveHistoryRepository
	Locations repository.LocationRepository
	Sequences repository.SequenceRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para las transiciones del picking:
// si fn devuelve error, nada de lo hecho dentro persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// SlipGenerator puerto para la generación del documento de picking en PDF.
type SlipGenerator interface {
	GenerateSlip(ctx context.Context, data SlipData) ([]byte, error)
}
