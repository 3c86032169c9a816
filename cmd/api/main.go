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
	"github.com/tu-usuario/rental-pro/internal/application/alerts"
	"github.com/tu-usuario/rental-pro/internal/application/analytics"
	"github.com/tu-usuario/rental-pro/internal/application/auth"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
	"github.com/tu-usuario/rental-pro/internal/domain/derivation"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
	"github.com/tu-usuario/rental-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/rental-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/rental-pro/internal/interfaces/http"
	"github.com/tu-usuario/rental-pro/pkg/config"
	"github.com/tu-usuario/rental-pro/pkg/logger"
)

// repos agrupa los puertos de persistencia ya construidos.
type repos struct {
	warehouse   repository.WarehouseRepository
	machinery   repository.MachineryRepository
	vehicle     repository.VehicleRepository
	tool        repository.ToolRepository
	sparePart   repository.SparePartRepository
	fuel        repository.FuelRecordRepository
	finance     repository.FinancialRecordRepository
	maintenance repository.MaintenanceRecordRepository
	rental      repository.RentalRepository
	alert       repository.AlertRepository
	user        repository.UserRepository
}

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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	var r repos
	if cfg.DB.Driver == "memory" {
		r = memoryRepos()
	} else {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = postgresRepos(pool)
	}

	thresholds := derivation.Thresholds{
		DocumentWindowDays:    cfg.Alerts.DocumentWindowDays,
		MaintenanceWindowDays: cfg.Alerts.MaintenanceWindowDays,
	}
	aggregator := alerts.NewAggregator(r.machinery, r.vehicle, r.sparePart, r.alert, alerts.Config{
		Thresholds:         thresholds,
		LowStockSeverity:   entity.ParseSeverity(cfg.Alerts.LowStockSeverity),
		OutOfStockSeverity: entity.ParseSeverity(cfg.Alerts.OutOfStockSeverity),
	}, log)

	warehouseUC := usecase.NewWarehouseUseCase(r.warehouse)
	machineryUC := usecase.NewMachineryUseCase(r.machinery, r.warehouse, thresholds)
	vehicleUC := usecase.NewVehicleUseCase(r.vehicle, r.warehouse, thresholds)
	toolUC := usecase.NewToolUseCase(r.tool, r.warehouse)
	sparePartUC := usecase.NewSparePartUseCase(r.sparePart, r.warehouse)
	fuelUC := usecase.NewFuelUseCase(r.fuel, r.machinery, r.vehicle)
	financeUC := usecase.NewFinanceUseCase(r.finance)
	rentalUC := usecase.NewRentalUseCase(r.rental, r.machinery, r.finance, log)
	maintenanceUC := usecase.NewMaintenanceUseCase(r.maintenance, r.machinery, r.vehicle, r.sparePart, r.finance, log)
	dashboardUC := analytics.NewDashboardUseCase(r.machinery, r.vehicle, r.tool, r.alert, r.finance)
	reportUC := analytics.NewMonthlyReportUseCase(r.finance, r.machinery)
	authUC := auth.NewAuthUseCase(r.user, auth.JWTConfig{
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
		Title:    "Rental Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC:   warehouseUC,
		MachineryUC:   machineryUC,
		VehicleUC:     vehicleUC,
		ToolUC:        toolUC,
		SparePartUC:   sparePartUC,
		FuelUC:        fuelUC,
		FinanceUC:     financeUC,
		RentalUC:      rentalUC,
		MaintenanceUC: maintenanceUC,
		Aggregator:    aggregator,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		AuthUC:        authUC,
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

func postgresRepos(q postgres.Querier) repos {
	return repos{
		warehouse:   postgres.NewWarehouseRepository(q),
		machinery:   postgres.NewMachineryRepository(q),
		vehicle:     postgres.NewVehicleRepository(q),
		tool:        postgres.NewToolRepository(q),
		sparePart:   postgres.NewSparePartRepository(q),
		fuel:        postgres.NewFuelRecordRepository(q),
		finance:     postgres.NewFinancialRecordRepository(q),
		maintenance: postgres.NewMaintenanceRecordRepository(q),
		rental:      postgres.NewRentalRepository(q),
		alert:       postgres.NewAlertRepository(q),
		user:        postgres.NewUserRepository(q),
	}
}

func memoryRepos() repos {
	return repos{
		warehouse:   memory.NewWarehouseRepository(),
		machinery:   memory.NewMachineryRepository(),
		vehicle:     memory.NewVehicleRepository(),
		tool:        memory.NewToolRepository(),
		sparePart:   memory.NewSparePartRepository(),
		fuel:        memory.NewFuelRecordRepository(),
		finance:     memory.NewFinancialRecordRepository(),
		maintenance: memory.NewMaintenanceRecordRepository(),
		rental:      memory.NewRentalRepository(),
		alert:       memory.NewAlertRepository(),
		user:        memory.NewUserRepository(),
	}
}
