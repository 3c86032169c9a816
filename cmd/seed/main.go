// seed puebla la base de datos con datos de demostración: almacenes, flota,
// repuestos y un usuario administrador. Pensado para entornos de desarrollo;
// es seguro re-ejecutarlo (los códigos únicos duplicados se reportan y se
// sigue con el resto).
//
// Uso: go run ./cmd/seed
// El usuario admin se crea con SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD
// (por defecto admin@rental-pro.local / cambiar123).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/rental-pro/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver == "memory" {
		fmt.Fprintln(os.Stderr, "DB_DRIVER=memory no persiste: el seed solo aplica a PostgreSQL")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	machineryRepo := postgres.NewMachineryRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	toolRepo := postgres.NewToolRepository(pool)
	sparePartRepo := postgres.NewSparePartRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Almacenes
	almacenCentral := &entity.Warehouse{
		ID:        uuid.NewString(),
		Name:      "Almacén Central",
		Address:   "Av. Industrial 1250",
		City:      "Arequipa",
		CreatedAt: now,
	}
	almacenObra := &entity.Warehouse{
		ID:        uuid.NewString(),
		Name:      "Almacén Obra Norte",
		Address:   "Km 12 Carretera a Yura",
		City:      "Arequipa",
		CreatedAt: now,
	}
	for _, w := range []*entity.Warehouse{almacenCentral, almacenObra} {
		report("almacén "+w.Name, warehouseRepo.Create(w))
	}

	// Maquinaria: una con mantenimiento vencido y otra con servicio próximo,
	// para que el agregador de alertas tenga condiciones reales que derivar.
	lastSvc := now.AddDate(0, -4, 0)
	overdue := now.AddDate(0, 0, -12)
	upcoming := now.AddDate(0, 0, 15)
	machines := []*entity.Machinery{
		{
			ID: uuid.NewString(), Name: "Excavadora CAT 320D", Category: "excavadora",
			Brand: "Caterpillar", Model: "320D", SerialNumber: "CAT320D-0041",
			Year: 2019, Hourmeter: 4820, Condition: entity.CondicionBueno,
			Status: entity.StatusDisponible, WarehouseID: almacenCentral.ID,
			LastMaintenance: &lastSvc, NextMaintenance: &overdue,
			MaintenanceIntervalHours: 250, MaintenanceIntervalDays: 90,
			CreatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Retroexcavadora JCB 3CX", Category: "retroexcavadora",
			Brand: "JCB", Model: "3CX", SerialNumber: "JCB3CX-1187",
			Year: 2021, Hourmeter: 2140, Condition: entity.CondicionExcelente,
			Status: entity.StatusDisponible, WarehouseID: almacenCentral.ID,
			LastMaintenance: &lastSvc, NextMaintenance: &upcoming,
			MaintenanceIntervalHours: 250, MaintenanceIntervalDays: 90,
			CreatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Volquete Volvo FMX", Category: "volquete",
			Brand: "Volvo", Model: "FMX 8x4", SerialNumber: "VOLFMX-0302",
			Year: 2018, Hourmeter: 7630, Condition: entity.CondicionRegular,
			Status: entity.StatusMantenimiento, WarehouseID: almacenObra.ID,
			MaintenanceIntervalHours: 300, MaintenanceIntervalDays: 120,
			CreatedAt: now,
		},
	}
	for _, m := range machines {
		report("maquinaria "+m.Name, machineryRepo.Create(m))
	}

	// Vehículos: SOAT por vencer en uno, revisión técnica vencida en otro.
	vehicles := []*entity.Vehicle{
		{
			ID: uuid.NewString(), Plate: "V7K-482", Brand: "Toyota", Model: "Hilux",
			Year: 2020, Mileage: 84500, Status: entity.StatusDisponible,
			SoatExpiration:            now.AddDate(0, 0, 9),
			TechnicalReviewExpiration: now.AddDate(0, 5, 0),
			WarehouseID:               almacenCentral.ID,
			CreatedAt:                 now,
		},
		{
			ID: uuid.NewString(), Plate: "B3N-901", Brand: "Hyundai", Model: "HD78",
			Year: 2017, Mileage: 152300, Status: entity.StatusDisponible,
			SoatExpiration:            now.AddDate(0, 3, 0),
			TechnicalReviewExpiration: now.AddDate(0, 0, -20),
			WarehouseID:               almacenObra.ID,
			CreatedAt:                 now,
		},
	}
	for _, v := range vehicles {
		report("vehículo "+v.Plate, vehicleRepo.Create(v))
	}

	// Herramientas
	tools := []*entity.Tool{
		{ID: uuid.NewString(), Name: "Martillo demoledor Bosch GSH 16-28", InternalCode: "HER-001", Status: entity.ToolDisponible, WarehouseID: almacenCentral.ID, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Vibradora de concreto Wacker", InternalCode: "HER-002", Status: entity.ToolNoDisponible, Observations: "mango rajado, en evaluación", WarehouseID: almacenObra.ID, CreatedAt: now},
	}
	for _, t := range tools {
		report("herramienta "+t.InternalCode, toolRepo.Create(t))
	}

	// Repuestos: uno bajo mínimo y uno sin stock para las alertas de inventario.
	parts := []*entity.SparePart{
		{
			ID: uuid.NewString(), Code: "REP-FLT-001", Name: "Filtro de aceite CAT 1R-0739",
			Brand: "Caterpillar", UnitPrice: decimal.NewFromFloat(85.50), MinStock: 4,
			StockByWarehouse:    map[string]int{almacenCentral.ID: 10, almacenObra.ID: 2},
			CompatibleMachinery: []string{machines[0].ID},
			Suppliers:           []string{"Ferreyros"},
			CreatedAt:           now,
		},
		{
			ID: uuid.NewString(), Code: "REP-FLT-002", Name: "Filtro de aire JCB 32/925682",
			Brand: "JCB", UnitPrice: decimal.NewFromFloat(62.00), MinStock: 3,
			StockByWarehouse:    map[string]int{almacenCentral.ID: 2},
			CompatibleMachinery: []string{machines[1].ID},
			Suppliers:           []string{"Unimaq"},
			CreatedAt:           now,
		},
		{
			ID: uuid.NewString(), Code: "REP-HID-003", Name: "Manguera hidráulica 3/4\" R2",
			Brand: "Parker", UnitPrice: decimal.NewFromFloat(145.90), MinStock: 2,
			StockByWarehouse: map[string]int{},
			Suppliers:        []string{"Hidromax", "Ferreyros"},
			CreatedAt:        now,
		},
	}
	for _, p := range parts {
		report("repuesto "+p.Code, sparePartRepo.Create(p))
	}

	// Usuario administrador
	email := envOr("SEED_ADMIN_EMAIL", "admin@rental-pro.local")
	password := envOr("SEED_ADMIN_PASSWORD", "cambiar123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}
	report("usuario "+email, userRepo.Create(&entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}))

	fmt.Println("Seed completado")
}

func report(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %s: %v\n", what, err)
		return
	}
	fmt.Printf("  creado: %s\n", what)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
