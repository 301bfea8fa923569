package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/auth"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/sales"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/pos-ferreteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-ferreteria-api/internal/interfaces/http"
	"github.com/jhoicas/pos-ferreteria-api/pkg/config"
	"github.com/jhoicas/pos-ferreteria-api/pkg/logger"
)

// mountSwagger registra la UI de swagger solo si el artefacto generado
// existe: swagger.New entra en pánico con un FilePath inexistente y tumbaría
// el proceso antes de escuchar.
func mountSwagger(app *fiber.App, filePath, title string, log *logger.Logger) bool {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado; UI de docs deshabilitada")
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	mountSwagger(app, "./docs/swagger.json", "POS Ferretería API", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SaleUC:        saleUC,
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		CategoryUC:    categoryUC,
		SettingsUC:    settingsUC,
		MaintenanceUC: maintenanceUC,
		JWTSecret:     cfg.JWT.Secret,
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
