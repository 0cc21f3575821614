package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/stockmaster-api/docs"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/stockmaster-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	opTypeRepo := postgres.NewOperationTypeRepository(pool)
	pickingRepo := postgres.NewPickingRepository(pool)
	moveRepo := postgres.NewStockMoveRepository(pool)
	quantRepo := postgres.NewStockQuantRepository(pool)
	historyRepo := postgres.NewMoveHistoryRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pickingUC := inventory.NewUseCase(
		txRunner, pickingRepo, moveRepo, opTypeRepo,
		locationRepo, productRepo, settingsRepo,
	)
	slipUC := inventory.NewSlipUseCase(pickingUC, infrapdf.NewSlipGenerator())
	stockUC := inventory.NewStockUseCase(
		txRunner, quantRepo, productRepo, locationRepo, settingsRepo,
	)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, quantRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, quantRepo)
	opTypeUC := usecase.NewOperationTypeUseCase(opTypeRepo, locationRepo)
	stockMoveUC := usecase.NewStockMoveUseCase(moveRepo)
	historyUC := usecase.NewHistoryUseCase(historyRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, pickingRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, locationRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMaster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		LocationUC:      locationUC,
		OperationTypeUC: opTypeUC,
		PickingUC:       pickingUC,
		SlipUC:          slipUC,
		StockUC:         stockUC,
		StockMoveUC:     stockMoveUC,
		HistoryUC:       historyUC,
		TaskUC:          taskUC,
		SettingsUC:      settingsUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
