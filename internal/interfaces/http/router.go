package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/auth"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/sales"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SaleUC        *sales.SaleUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *usecase.CustomerUseCase
	CategoryUC    *usecase.CategoryUseCase
	SettingsUC    *usecase.SettingsUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Estado de inicialización (público: el frontend decide si muestra registro o login)
	api.Get("/check-init", authHandler.CheckInit)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sales (protegido)
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)

	// Products (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers (protegido)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Categories (protegido)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Settings (protegido)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := protected.Group("/settings")
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Perfil del usuario autenticado (protegido)
	userHandler := NewUserHandler(deps.AuthUC)
	protected.Put("/users/profile", userHandler.UpdateProfile)

	// Mantenimiento (protegido)
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	protected.Post("/reset", maintenanceHandler.Reset)
}
