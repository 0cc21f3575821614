package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	LocationUC      *usecase.LocationUseCase
	OperationTypeUC *usecase.OperationTypeUseCase
	PickingUC       *inventory.PickingUseCase
	SlipUC          *inventory.SlipUseCase
	StockUC         *inventory.StockUseCase
	StockMoveUC     *usecase.StockMoveUseCase
	HistoryUC       *usecase.HistoryUseCase
	TaskUC          *usecase.TaskUseCase
	SettingsUC      *usecase.SettingsUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/children", categoryHandler.Children)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.StockLevels)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Locations
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Get("/:id/children", locationHandler.Children)
	locations.Get("/:id/stock", locationHandler.StockLevels)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Operation types
	opTypes := protected.Group("/operation-types")
	opTypeHandler := NewOperationTypeHandler(deps.OperationTypeUC)
	opTypes.Post("/", opTypeHandler.Create)
	opTypes.Get("/", opTypeHandler.List)
	opTypes.Get("/:id", opTypeHandler.GetByID)
	opTypes.Put("/:id", opTypeHandler.Update)
	opTypes.Delete("/:id", opTypeHandler.Delete)

	// Pickings: CRUD, líneas y transiciones de estado
	pickings := protected.Group("/pickings")
	pickingHandler := NewPickingHandler(deps.PickingUC, deps.SlipUC)
	pickings.Post("/", pickingHandler.Create)
	pickings.Get("/", pickingHandler.List)
	pickings.Get("/:id", pickingHandler.GetByID)
	pickings.Put("/:id", pickingHandler.Update)
	pickings.Delete("/:id", pickingHandler.Delete)
	pickings.Post("/:id/moves", pickingHandler.AddMove)
	pickings.Delete("/:id/moves/:moveId", pickingHandler.RemoveMove)
	pickings.Post("/:id/confirm", pickingHandler.Confirm)
	pickings.Post("/:id/validate", pickingHandler.Validate)
	pickings.Post("/:id/cancel", pickingHandler.Cancel)
	pickings.Get("/:id/pdf", pickingHandler.PDF)

	// Stock moves (solo lectura)
	moves := protected.Group("/stock-moves")
	moveHandler := NewStockMoveHandler(deps.StockMoveUC)
	moves.Get("/", moveHandler.List)
	moves.Get("/:id", moveHandler.GetByID)

	// Stock: cantidades, alertas y ajustes
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/available", stockHandler.Availability)
	stock.Get("/low", stockHandler.LowStock)
	stock.Get("/out", stockHandler.OutOfStock)
	stock.Post("/adjust", stockHandler.Adjust)

	// Historial de auditoría (solo lectura)
	history := protected.Group("/history")
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	history.Get("/", historyHandler.List)

	// Tasks
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/my-tasks", taskHandler.MyTasks)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Post("/:id/complete", taskHandler.Complete)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Settings (solo admin puede mutar)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireRole("admin"), settingsHandler.Update)
}
