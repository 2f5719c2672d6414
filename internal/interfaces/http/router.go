package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/state"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	State       *state.Manager
	DashboardUC *usecase.DashboardUseCase
	ReportUC    *usecase.ReportUseCase
	AIUC        *usecase.AIUseCase
	JWT         config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: el login es público; el logout requiere identidad.
	authHandler := NewAuthHandler(deps.State, deps.JWT)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWT.Secret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.State)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Patch("/:id/quantity", productHandler.UpdateQuantity)

	// Catálogo: categorías y localizaciones
	catalogHandler := NewCatalogHandler(deps.State)
	categories := protected.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.AddCategory)
	categories.Put("/", catalogHandler.RenameCategory)
	categories.Delete("/", catalogHandler.DeleteCategory)

	locations := protected.Group("/locations")
	locations.Get("/", catalogHandler.ListLocations)
	locations.Post("/", catalogHandler.AddLocation)
	locations.Put("/", catalogHandler.RenameLocation)
	locations.Delete("/", catalogHandler.DeleteLocation)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.State)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Cuentas (admin-only)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.State)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)
	users.Patch("/:id/password", userHandler.UpdatePassword)

	// Notificaciones
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.State)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/read-all", notificationHandler.MarkAllRead)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Settings: lectura para todos, escritura admin-only
	settingsHandler := NewSettingsHandler(deps.State)
	settings := protected.Group("/settings")
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", adminOnly, settingsHandler.Update)

	// Log de actividades
	activityHandler := NewActivityHandler(deps.State)
	protected.Get("/activity", activityHandler.List)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/movements", reportHandler.Movements)
	reports.Get("/export/pdf", reportHandler.ExportPDF)
	reports.Get("/export/spreadsheet", reportHandler.ExportSpreadsheet)
	reports.Get("/analysis", reportHandler.Analysis)

	// IA
	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ai/description", aiHandler.GenerateDescription)
}
