package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/alerts"
	"github.com/tu-usuario/rental-pro/internal/application/analytics"
	"github.com/tu-usuario/rental-pro/internal/application/auth"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC   *usecase.WarehouseUseCase
	MachineryUC   *usecase.MachineryUseCase
	VehicleUC     *usecase.VehicleUseCase
	ToolUC        *usecase.ToolUseCase
	SparePartUC   *usecase.SparePartUseCase
	FuelUC        *usecase.FuelUseCase
	FinanceUC     *usecase.FinanceUseCase
	RentalUC      *usecase.RentalUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	Aggregator    *alerts.Aggregator
	DashboardUC   *analytics.DashboardUseCase
	ReportUC      *analytics.MonthlyReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Almacenes
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Delete)

	// Maquinaria
	machinery := protected.Group("/machinery")
	machineryHandler := NewMachineryHandler(deps.MachineryUC)
	machinery.Post("/", machineryHandler.Create)
	machinery.Get("/", machineryHandler.List)
	machinery.Get("/:id", machineryHandler.GetByID)
	machinery.Patch("/:id/status", machineryHandler.UpdateStatus)

	// Vehículos
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Patch("/:id/status", vehicleHandler.UpdateStatus)

	// Herramientas
	tools := protected.Group("/tools")
	toolHandler := NewToolHandler(deps.ToolUC)
	tools.Post("/", toolHandler.Create)
	tools.Get("/", toolHandler.List)
	tools.Patch("/:id/status", toolHandler.UpdateStatus)

	// Repuestos
	spareParts := protected.Group("/spare-parts")
	sparePartHandler := NewSparePartHandler(deps.SparePartUC)
	spareParts.Post("/", sparePartHandler.Create)
	spareParts.Get("/", sparePartHandler.List)
	spareParts.Get("/:id", sparePartHandler.GetByID)
	spareParts.Patch("/:id/stock", sparePartHandler.AdjustStock)

	// Combustible
	fuel := protected.Group("/fuel")
	fuelHandler := NewFuelHandler(deps.FuelUC)
	fuel.Post("/", fuelHandler.Create)
	fuel.Get("/", fuelHandler.List)
	fuel.Get("/stats", fuelHandler.Stats)

	// Finanzas (contador y admin pueden registrar movimientos)
	finance := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Post("/records", RequireRole(entity.RoleAdmin, entity.RoleContador), financeHandler.Create)
	finance.Get("/records", financeHandler.List)
	finance.Get("/summary", financeHandler.Summary)
	finance.Get("/expense-categories", financeHandler.ExpenseCategories)

	// Alquileres
	rentals := protected.Group("/rentals")
	rentalHandler := NewRentalHandler(deps.RentalUC)
	rentals.Post("/", rentalHandler.Create)
	rentals.Get("/", rentalHandler.List)
	rentals.Get("/:id", rentalHandler.GetByID)
	rentals.Post("/:id/complete", rentalHandler.Complete)
	rentals.Post("/:id/cancel", rentalHandler.Cancel)

	// Mantenimiento
	maintenance := protected.Group("/maintenance")
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	maintenance.Post("/", maintenanceHandler.Register)
	maintenance.Get("/", maintenanceHandler.List)

	// Alertas
	alertGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Aggregator)
	alertGroup.Get("/", alertHandler.List)
	alertGroup.Post("/", alertHandler.Raise)
	alertGroup.Post("/:id/resolve", alertHandler.Resolve)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/monthly-report", dashboardHandler.MonthlyReport)
}
