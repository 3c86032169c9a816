package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
	"github.com/tu-usuario/rental-pro/pkg/logger"
)

// MaintenanceUseCase casos de uso para servicios de mantenimiento.
// Registrar un servicio descuenta los repuestos consumidos del almacén de la
// máquina, actualiza sus fechas de mantenimiento y emite el egreso en finanzas.
type MaintenanceUseCase struct {
	repo          repository.MaintenanceRecordRepository
	machineryRepo repository.MachineryRepository
	vehicleRepo   repository.VehicleRepository
	sparePartRepo repository.SparePartRepository
	financeRepo   repository.FinancialRecordRepository
	log           *logger.Logger
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(
	repo repository.MaintenanceRecordRepository,
	machineryRepo repository.MachineryRepository,
	vehicleRepo repository.VehicleRepository,
	sparePartRepo repository.SparePartRepository,
	financeRepo repository.FinancialRecordRepository,
	log *logger.Logger,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{
		repo:          repo,
		machineryRepo: machineryRepo,
		vehicleRepo:   vehicleRepo,
		sparePartRepo: sparePartRepo,
		financeRepo:   financeRepo,
		log:           log,
	}
}

// Register registra un servicio de mantenimiento sobre una máquina o vehículo.
//
// Si consume repuestos, el descuento de stock se intenta primero: un repuesto
// sin stock suficiente aborta el registro completo con ErrInsufficientStock,
// sin dejar el servicio a medias.
func (uc *MaintenanceUseCase) Register(in dto.CreateMaintenanceRequest) (*dto.MaintenanceRecordResponse, error) {
	if in.Type != entity.MantenimientoPreventivo && in.Type != entity.MantenimientoCorrectivo {
		return nil, domain.ErrInvalidInput
	}
	if in.LaborCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil || date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	nextDate, err := parseDatePtr(in.NextMaintenanceDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	ref := entity.EntityRef{Kind: entity.EntityKind(in.EntityKind), ID: in.EntityID}
	entityName, warehouseID, err := uc.resolveTarget(ref)
	if err != nil {
		return nil, err
	}

	parts, partsCost, err := uc.consumeSpareParts(in.SpareParts, warehouseID)
	if err != nil {
		return nil, err
	}

	total := in.LaborCost.Add(partsCost).Round(2)
	r := &entity.MaintenanceRecord{
		ID:                   uuid.New().String(),
		Entity:               ref,
		EntityName:           entityName,
		Type:                 in.Type,
		Date:                 date,
		Description:          in.Description,
		TechnicianName:       in.TechnicianName,
		LaborCost:            in.LaborCost,
		SpareParts:           parts,
		TotalCost:            total,
		NextMaintenanceDate:  nextDate,
		NextMaintenanceHours: in.NextMaintenanceHours,
		CreatedAt:            time.Now(),
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}

	if ref.Kind == entity.KindMachinery {
		if err := uc.machineryRepo.UpdateMaintenanceDates(ref.ID, date, nextDate); err != nil {
			uc.log.Error().Err(err).Str("machinery_id", ref.ID).Msg("actualizar fechas de mantenimiento")
		}
	}

	expense := &entity.FinancialRecord{
		ID:          uuid.New().String(),
		Type:        entity.FinanzasEgreso,
		Category:    "Mantenimiento",
		Subcategory: in.Type,
		Description: "Mantenimiento de " + entityName,
		Amount:      total,
		Date:        date,
		Related:     ref,
		CreatedAt:   time.Now(),
	}
	if err := uc.financeRepo.Create(expense); err != nil {
		uc.log.Error().Err(err).Str("maintenance_id", r.ID).Msg("no se pudo registrar el egreso del mantenimiento")
	}

	return toMaintenanceResponse(r), nil
}

// List lista todos los servicios registrados.
func (uc *MaintenanceUseCase) List() ([]dto.MaintenanceRecordResponse, error) {
	return uc.toResponses(uc.repo.List())
}

// ListByEntity lista el historial de servicios de una máquina o vehículo.
func (uc *MaintenanceUseCase) ListByEntity(kind, id string) ([]dto.MaintenanceRecordResponse, error) {
	ref := entity.EntityRef{Kind: entity.EntityKind(kind), ID: id}
	if ref.Kind != entity.KindMachinery && ref.Kind != entity.KindVehicle {
		return nil, domain.ErrInvalidInput
	}
	return uc.toResponses(uc.repo.ListByEntity(ref))
}

// resolveTarget valida la entidad objetivo y devuelve su nombre y el almacén
// del que se descuentan los repuestos.
func (uc *MaintenanceUseCase) resolveTarget(ref entity.EntityRef) (name, warehouseID string, err error) {
	switch ref.Kind {
	case entity.KindMachinery:
		m, err := uc.machineryRepo.GetByID(ref.ID)
		if err != nil {
			return "", "", err
		}
		if m == nil {
			return "", "", domain.ErrNotFound
		}
		return m.Name, m.WarehouseID, nil
	case entity.KindVehicle:
		v, err := uc.vehicleRepo.GetByID(ref.ID)
		if err != nil {
			return "", "", err
		}
		if v == nil {
			return "", "", domain.ErrNotFound
		}
		return v.Plate, v.WarehouseID, nil
	default:
		return "", "", domain.ErrInvalidInput
	}
}

// consumeSpareParts valida y descuenta los repuestos del almacén dado.
// Verifica disponibilidad antes de tocar stock para no dejar descuentos parciales.
func (uc *MaintenanceUseCase) consumeSpareParts(items []dto.MaintenanceSparePartDTO, warehouseID string) ([]entity.MaintenanceSparePart, decimal.Decimal, error) {
	consumed := make([]entity.MaintenanceSparePart, 0, len(items))
	totalCost := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		part, err := uc.sparePartRepo.GetByID(item.SparePartID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if part == nil {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		if part.StockByWarehouse[warehouseID] < item.Quantity {
			return nil, decimal.Zero, domain.ErrInsufficientStock
		}
		unitCost := item.UnitCost
		if unitCost.IsZero() {
			unitCost = part.UnitPrice
		}
		lineCost := unitCost.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		consumed = append(consumed, entity.MaintenanceSparePart{
			SparePartID:   part.ID,
			SparePartName: part.Name,
			Quantity:      item.Quantity,
			UnitCost:      unitCost,
			TotalCost:     lineCost,
		})
		totalCost = totalCost.Add(lineCost)
	}
	for _, c := range consumed {
		if err := uc.sparePartRepo.AdjustStock(c.SparePartID, warehouseID, -c.Quantity); err != nil {
			return nil, decimal.Zero, err
		}
	}
	return consumed, totalCost, nil
}

func (uc *MaintenanceUseCase) toResponses(list []*entity.MaintenanceRecord, err error) ([]dto.MaintenanceRecordResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceRecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toMaintenanceResponse(r))
	}
	return items, nil
}

func toMaintenanceResponse(r *entity.MaintenanceRecord) *dto.MaintenanceRecordResponse {
	return &dto.MaintenanceRecordResponse{
		ID:                  r.ID,
		Entity:              refToDTO(r.Entity),
		EntityName:          r.EntityName,
		Type:                r.Type,
		Date:                r.Date,
		Description:         r.Description,
		TechnicianName:      r.TechnicianName,
		LaborCost:           r.LaborCost,
		TotalCost:           r.TotalCost,
		NextMaintenanceDate: r.NextMaintenanceDate,
		CreatedAt:           r.CreatedAt,
	}
}
