package inventory_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// memStore almacén en memoria compartido por todos los repositorios fake.
// memTxRunner toma un snapshot profundo antes de cada unidad de trabajo y lo
// restaura si fn falla, reproduciendo la semántica rollback de la transacción
// real: los tests de atomicidad dependen de esto.
type memStore struct {
	pickings  map[string]*entity.Picking
	moves     []*entity.StockMove
	quants    map[string]*entity.StockQuant // clave: productID|locationID
	history   []*entity.MoveHistory
	locations map[string]*entity.Location
	opTypes   map[string]*entity.OperationType
	products  map[string]*entity.Product
	settings  entity.WarehouseSettings
	seqs      map[string]int64
	nextID    int
}

func newMemStore() *memStore {
	return &memStore{
		pickings:  make(map[string]*entity.Picking),
		quants:    make(map[string]*entity.StockQuant),
		locations: make(map[string]*entity.Location),
		opTypes:   make(map[string]*entity.OperationType),
		products:  make(map[string]*entity.Product),
		seqs:      make(map[string]int64),
		settings:  entity.WarehouseSettings{ID: "settings"},
	}
}

func (s *memStore) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func quantKeyOf(productID, locationID string) string {
	return productID + "|" + locationID
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.pickings {
		cp := *v
		c.pickings[k] = &cp
	}
	c.moves = make([]*entity.StockMove, 0, len(s.moves))
	for _, m := range s.moves {
		cp := *m
		c.moves = append(c.moves, &cp)
	}
	for k, v := range s.quants {
		cp := *v
		c.quants[k] = &cp
	}
	c.history = make([]*entity.MoveHistory, 0, len(s.history))
	for _, h := range s.history {
		cp := *h
		c.history = append(c.history, &cp)
	}
	for k, v := range s.locations {
		cp := *v
		c.locations[k] = &cp
	}
	for k, v := range s.opTypes {
		cp := *v
		c.opTypes[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.seqs {
		c.seqs[k] = v
	}
	c.settings = s.settings
	c.nextID = s.nextID
	return c
}

// quantity cantidad en mano del par (producto, ubicación); cero si no hay fila.
func (s *memStore) quantity(productID, locationID string) decimal.Decimal {
	if q, ok := s.quants[quantKeyOf(productID, locationID)]; ok {
		return q.Quantity
	}
	return decimal.Zero
}

// historyByAction registros del historial de un tipo de acción dado.
func (s *memStore) historyByAction(actionType string) []*entity.MoveHistory {
	var out []*entity.MoveHistory
	for _, h := range s.history {
		if h.ActionType == actionType {
			out = append(out, h)
		}
	}
	return out
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(inventory.TxRepos) error) error {
	snap := r.s.clone()
	err := fn(inventory.TxRepos{
		Pickings:  &memPickings{r.s},
		Moves:     &memMoves{r.s},
		Quants:    &memQuants{r.s},
		History:   &memHistory{r.s},
		Locations: &memLocations{r.s},
		Sequences: &memSequences{r.s},
	})
	if err != nil {
		*r.s = *snap
	}
	return err
}

// ── Pickings ─────────────────────────────────────────────────────────────────

type memPickings struct{ s *memStore }

func (r *memPickings) Create(p *entity.Picking) error {
	cp := *p
	r.s.pickings[p.ID] = &cp
	return nil
}

func (r *memPickings) GetByID(id string) (*entity.Picking, error) {
	p, ok := r.s.pickings[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPickings) GetForUpdate(id string) (*entity.Picking, error) {
	return r.GetByID(id)
}

func (r *memPickings) Update(p *entity.Picking) error {
	if _, ok := r.s.pickings[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.pickings[p.ID] = &cp
	return nil
}

func (r *memPickings) Delete(id string) error {
	delete(r.s.pickings, id)
	return nil
}

func (r *memPickings) List(filter repository.PickingFilter) ([]*entity.Picking, error) {
	var out []*entity.Picking
	for _, p := range r.s.pickings {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.OperationTypeID != "" && p.OperationTypeID != filter.OperationTypeID {
			continue
		}
		if filter.Search != "" && !strings.Contains(p.Reference, filter.Search) &&
			!strings.Contains(p.Partner, filter.Search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ── Moves ────────────────────────────────────────────────────────────────────

type memMoves struct{ s *memStore }

func (r *memMoves) Create(m *entity.StockMove) error {
	cp := *m
	r.s.moves = append(r.s.moves, &cp)
	return nil
}

func (r *memMoves) GetByID(id string) (*entity.StockMove, error) {
	for _, m := range r.s.moves {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMoves) ListByPicking(pickingID string) ([]*entity.StockMove, error) {
	var out []*entity.StockMove
	for _, m := range r.s.moves {
		if m.PickingID == pickingID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMoves) UpdateStatus(id, status string) error {
	for _, m := range r.s.moves {
		if m.ID == id {
			m.Status = status
			m.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memMoves) UpdateStatusByPicking(pickingID, status string) error {
	for _, m := range r.s.moves {
		if m.PickingID == pickingID {
			m.Status = status
			m.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *memMoves) Delete(id string) error {
	for i, m := range r.s.moves {
		if m.ID == id {
			r.s.moves = append(r.s.moves[:i], r.s.moves[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memMoves) List(filter repository.StockMoveFilter) ([]*entity.StockMove, error) {
	var out []*entity.StockMove
	for _, m := range r.s.moves {
		if filter.PickingID != "" && m.PickingID != filter.PickingID {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// ── Quants ───────────────────────────────────────────────────────────────────

type memQuants struct{ s *memStore }

func (r *memQuants) Get(productID, locationID string) (*entity.StockQuant, error) {
	q, ok := r.s.quants[quantKeyOf(productID, locationID)]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *memQuants) GetForUpdate(productID, locationID string) (*entity.StockQuant, error) {
	if q, ok := r.s.quants[quantKeyOf(productID, locationID)]; ok {
		cp := *q
		return &cp, nil
	}
	return &entity.StockQuant{ProductID: productID, LocationID: locationID}, nil
}

func (r *memQuants) ApplyDelta(productID, locationID string, delta decimal.Decimal) (*entity.StockQuant, error) {
	k := quantKeyOf(productID, locationID)
	q, ok := r.s.quants[k]
	if !ok {
		q = &entity.StockQuant{
			ID: r.s.id("quant"), ProductID: productID, LocationID: locationID,
			CreatedAt: time.Now(),
		}
		r.s.quants[k] = q
	}
	q.Quantity = q.Quantity.Add(delta)
	q.UpdatedAt = time.Now()
	cp := *q
	return &cp, nil
}

func (r *memQuants) List(filter repository.StockQuantFilter) ([]*entity.StockQuant, error) {
	var out []*entity.StockQuant
	for _, q := range r.s.quants {
		if filter.ProductID != "" && q.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID != "" && q.LocationID != filter.LocationID {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memQuants) LowStock(threshold decimal.Decimal) ([]*entity.StockQuant, error) {
	var out []*entity.StockQuant
	for _, q := range r.s.quants {
		available := q.Available()
		if available.GreaterThan(decimal.Zero) && available.LessThan(threshold) {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memQuants) OutOfStock() ([]*entity.StockQuant, error) {
	var out []*entity.StockQuant
	for _, q := range r.s.quants {
		if !q.Available().GreaterThan(decimal.Zero) {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── History ──────────────────────────────────────────────────────────────────

type memHistory struct{ s *memStore }

// Create asigna id y timestamp igual que el repositorio real (la base genera
// ambos en el INSERT): los llamadores nunca los rellenan.
func (r *memHistory) Create(record *entity.MoveHistory) error {
	cp := *record
	cp.ID = r.s.id("hist")
	cp.Timestamp = time.Now()
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *memHistory) List(filter repository.MoveHistoryFilter) ([]*entity.MoveHistory, error) {
	var out []*entity.MoveHistory
	for _, h := range r.s.history {
		if filter.ActionType != "" && h.ActionType != filter.ActionType {
			continue
		}
		if filter.PickingID != "" && h.PickingID != filter.PickingID {
			continue
		}
		if filter.ProductID != "" && h.ProductID != filter.ProductID {
			continue
		}
		cp := *h
		out = append(out, &cp)
	}
	return out, nil
}

// ── Locations ────────────────────────────────────────────────────────────────

type memLocations struct{ s *memStore }

func (r *memLocations) Create(l *entity.Location) error {
	cp := *l
	r.s.locations[l.ID] = &cp
	return nil
}

func (r *memLocations) GetByID(id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLocations) GetByIDs(ids []string) (map[string]*entity.Location, error) {
	out := make(map[string]*entity.Location, len(ids))
	for _, id := range ids {
		if l, ok := r.s.locations[id]; ok {
			cp := *l
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *memLocations) Update(l *entity.Location) error {
	if _, ok := r.s.locations[l.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *l
	r.s.locations[l.ID] = &cp
	return nil
}

func (r *memLocations) Delete(id string) error {
	delete(r.s.locations, id)
	return nil
}

func (r *memLocations) List(repository.LocationFilter) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memLocations) ListChildren(parentID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if l.ParentID == parentID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── Sequences ────────────────────────────────────────────────────────────────

type memSequences struct{ s *memStore }

func (r *memSequences) Next(prefix string) (int64, error) {
	r.s.seqs[prefix]++
	return r.s.seqs[prefix], nil
}

// ── OperationTypes ───────────────────────────────────────────────────────────

type memOpTypes struct{ s *memStore }

func (r *memOpTypes) Create(ot *entity.OperationType) error {
	cp := *ot
	r.s.opTypes[ot.ID] = &cp
	return nil
}

func (r *memOpTypes) GetByID(id string) (*entity.OperationType, error) {
	ot, ok := r.s.opTypes[id]
	if !ok {
		return nil, nil
	}
	cp := *ot
	return &cp, nil
}

func (r *memOpTypes) Update(ot *entity.OperationType) error {
	cp := *ot
	r.s.opTypes[ot.ID] = &cp
	return nil
}

func (r *memOpTypes) Delete(id string) error {
	delete(r.s.opTypes, id)
	return nil
}

func (r *memOpTypes) List(code string, limit, offset int) ([]*entity.OperationType, error) {
	var out []*entity.OperationType
	for _, ot := range r.s.opTypes {
		if code != "" && ot.Code != code {
			continue
		}
		cp := *ot
		out = append(out, &cp)
	}
	return out, nil
}

// ── Products ─────────────────────────────────────────────────────────────────

type memProducts struct{ s *memStore }

func (r *memProducts) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProducts) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProducts) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProducts) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

func (r *memProducts) List(repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProducts) ReferencedInHistory(id string) (bool, error) {
	for _, h := range r.s.history {
		if h.ProductID == id {
			return true, nil
		}
	}
	return false, nil
}

// ── Settings ─────────────────────────────────────────────────────────────────

type memSettings struct{ s *memStore }

func (r *memSettings) Get() (*entity.WarehouseSettings, error) {
	cp := r.s.settings
	return &cp, nil
}

func (r *memSettings) Update(settings *entity.WarehouseSettings) error {
	r.s.settings = *settings
	return nil
}
