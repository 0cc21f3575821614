package entity

import "time"

// Tipos de uso de una ubicación. Determinan si la cantidad se controla (tracked)
// o si la ubicación actúa como fuente/sumidero infinito.
const (
	UsageInternal   = "internal"   // ubicación física interna
	UsageCustomer   = "customer"   // cliente: sumidero infinito, sin quants
	UsageSupplier   = "supplier"   // proveedor: fuente infinita, sin quants
	UsageInventory  = "inventory"  // pérdidas de inventario
	UsageProduction = "production" // producción
	UsageTransit    = "transit"    // tránsito: materializa quants pero sin invariante
)

// Location ubicación jerárquica de almacén (relación padre-hijo).
type Location struct {
	ID        string
	Name      string
	ParentID  string // vacío = ubicación raíz
	Barcode   string
	UsageType string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidUsageType indica si s es uno de los tipos de uso conocidos.
func ValidUsageType(s string) bool {
	switch s {
	case UsageInternal, UsageCustomer, UsageSupplier, UsageInventory, UsageProduction, UsageTransit:
		return true
	}
	return false
}

// TracksQuantity indica si la ubicación materializa filas en stock_quants.
// customer y supplier son fuentes/sumideros infinitos: no se materializan.
func (l *Location) TracksQuantity() bool {
	return l.UsageType != UsageCustomer && l.UsageType != UsageSupplier
}

// EnforcesAvailability indica si los retiros desde esta ubicación exigen
// disponibilidad suficiente y cantidad no negativa. transit materializa quants
// pero queda exento del invariante (pass-through).
func (l *Location) EnforcesAvailability() bool {
	switch l.UsageType {
	case UsageInternal, UsageProduction, UsageInventory:
		return true
	}
	return false
}
