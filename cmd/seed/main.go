// seed carga datos de demostración: usuario administrador, ubicaciones base,
// tipos de operación estándar y un catálogo pequeño de productos.
//
// Uso: go run ./cmd/seed
// Es idempotente a nivel grueso: si el usuario admin ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmaster-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatal("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fatal("migración de esquema", err)
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByUsername("admin")
	if err != nil {
		fatal("consultar usuario admin", err)
	}
	if existing != nil {
		fmt.Println("datos de demostración ya cargados, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fatal("generar hash bcrypt", err)
	}
	admin := &entity.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        "admin@stockmaster.local",
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := userRepo.Create(admin); err != nil {
		fatal("crear usuario admin", err)
	}

	hash, err = bcrypt.GenerateFromPassword([]byte("bodega123"), bcrypt.DefaultCost)
	if err != nil {
		fatal("generar hash bcrypt", err)
	}
	if err := userRepo.Create(&entity.User{
		ID:           uuid.NewString(),
		Username:     "bodeguero",
		Email:        "bodega@stockmaster.local",
		PasswordHash: string(hash),
		Role:         "bodeguero",
		IsActive:     true,
	}); err != nil {
		fatal("crear usuario bodeguero", err)
	}

	locationRepo := postgres.NewLocationRepository(pool)
	stockRoot := &entity.Location{
		ID: uuid.NewString(), Name: "WH/Stock", UsageType: entity.UsageInternal, IsActive: true,
	}
	locations := []*entity.Location{
		stockRoot,
		{ID: uuid.NewString(), Name: "WH/Stock/Estantería A", ParentID: stockRoot.ID, Barcode: "LOC-A", UsageType: entity.UsageInternal, IsActive: true},
		{ID: uuid.NewString(), Name: "WH/Stock/Estantería B", ParentID: stockRoot.ID, Barcode: "LOC-B", UsageType: entity.UsageInternal, IsActive: true},
		{ID: uuid.NewString(), Name: "Proveedores", UsageType: entity.UsageSupplier, IsActive: true},
		{ID: uuid.NewString(), Name: "Clientes", UsageType: entity.UsageCustomer, IsActive: true},
		{ID: uuid.NewString(), Name: "Pérdidas de inventario", UsageType: entity.UsageInventory, IsActive: true},
		{ID: uuid.NewString(), Name: "WH/Tránsito", UsageType: entity.UsageTransit, IsActive: true},
	}
	for _, loc := range locations {
		if err := locationRepo.Create(loc); err != nil {
			fatal("crear ubicación "+loc.Name, err)
		}
	}
	suppliers, customers, losses := locations[3], locations[4], locations[5]

	opTypeRepo := postgres.NewOperationTypeRepository(pool)
	opTypes := []*entity.OperationType{
		{
			ID: uuid.NewString(), Name: "Recepciones", Code: entity.OperationIncoming,
			SequencePrefix: "IN", Description: "Entrada de mercancía de proveedores",
			DefaultSourceLocationID: suppliers.ID, DefaultDestinationLocID: stockRoot.ID,
		},
		{
			ID: uuid.NewString(), Name: "Entregas", Code: entity.OperationOutgoing,
			SequencePrefix: "OUT", Description: "Salida de mercancía hacia clientes",
			DefaultSourceLocationID: stockRoot.ID, DefaultDestinationLocID: customers.ID,
		},
		{
			ID: uuid.NewString(), Name: "Transferencias internas", Code: entity.OperationInternal,
			SequencePrefix: "INT", Description: "Movimientos entre ubicaciones internas",
			DefaultSourceLocationID: stockRoot.ID, DefaultDestinationLocID: stockRoot.ID,
		},
	}
	for _, ot := range opTypes {
		if err := opTypeRepo.Create(ot); err != nil {
			fatal("crear tipo de operación "+ot.Name, err)
		}
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	electronics := &entity.Category{ID: uuid.NewString(), Name: "Electrónica"}
	food := &entity.Category{ID: uuid.NewString(), Name: "Alimentos"}
	for _, cat := range []*entity.Category{electronics, food} {
		if err := categoryRepo.Create(cat); err != nil {
			fatal("crear categoría "+cat.Name, err)
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	products := []*entity.Product{
		{
			ID: uuid.NewString(), SKU: "ELEC-001", Name: "Teclado mecánico",
			CategoryID: electronics.ID, Cost: decimal.NewFromInt(120000),
			Price: decimal.NewFromInt(185000), Barcode: "7701234000011", UOM: "pcs", IsActive: true,
		},
		{
			ID: uuid.NewString(), SKU: "ELEC-002", Name: "Monitor 24 pulgadas",
			CategoryID: electronics.ID, Cost: decimal.NewFromInt(650000),
			Price: decimal.NewFromInt(899000), Barcode: "7701234000028", UOM: "pcs", IsActive: true,
		},
		{
			ID: uuid.NewString(), SKU: "ALIM-001", Name: "Café tostado",
			CategoryID: food.ID, Cost: decimal.NewFromFloat(28500.50),
			Price: decimal.NewFromInt(42000), Barcode: "7701234000035", UOM: "kg", IsActive: true,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			fatal("crear producto "+p.SKU, err)
		}
	}

	settingsRepo := postgres.NewSettingsRepository(pool)
	settings, err := settingsRepo.Get()
	if err != nil {
		fatal("leer configuración de almacén", err)
	}
	settings.LowStockThreshold = decimal.NewFromInt(10)
	settings.DefaultReceiptLocationID = stockRoot.ID
	settings.DefaultDeliveryLocationID = customers.ID
	settings.DefaultAdjustmentLocID = losses.ID
	settings.UpdatedBy = admin.ID
	if err := settingsRepo.Update(settings); err != nil {
		fatal("guardar configuración de almacén", err)
	}

	fmt.Println("datos de demostración cargados")
	fmt.Println("  usuarios: admin/admin123, bodeguero/bodega123")
	fmt.Printf("  ubicaciones: %d, tipos de operación: %d, productos: %d\n",
		len(locations), len(opTypes), len(products))
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
