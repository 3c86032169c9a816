package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

// FuelUseCase casos de uso para cargas de combustible.
// El costo total siempre se calcula en el servidor: Liters × UnitCost.
type FuelUseCase struct {
	repo          repository.FuelRecordRepository
	machineryRepo repository.MachineryRepository
	vehicleRepo   repository.VehicleRepository
}

// NewFuelUseCase construye el caso de uso.
func NewFuelUseCase(
	repo repository.FuelRecordRepository,
	machineryRepo repository.MachineryRepository,
	vehicleRepo repository.VehicleRepository,
) *FuelUseCase {
	return &FuelUseCase{repo: repo, machineryRepo: machineryRepo, vehicleRepo: vehicleRepo}
}

// Create registra una carga. La entidad referida debe existir y ser una
// máquina o un vehículo; litros y costo unitario deben ser positivos.
func (uc *FuelUseCase) Create(in dto.CreateFuelRecordRequest) (*dto.FuelRecordResponse, error) {
	if in.Liters.LessThanOrEqual(decimal.Zero) || in.UnitCost.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.Date)
	if err != nil || date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	ref := entity.EntityRef{Kind: entity.EntityKind(in.EntityKind), ID: in.EntityID}
	name, err := uc.resolveEntityName(ref)
	if err != nil {
		return nil, err
	}
	r := &entity.FuelRecord{
		ID:         uuid.New().String(),
		Entity:     ref,
		EntityName: name,
		Date:       date,
		Liters:     in.Liters,
		UnitCost:   in.UnitCost,
		TotalCost:  in.Liters.Mul(in.UnitCost).Round(2),
		Location:   in.Location,
		Odometer:   in.Odometer,
		Hourmeter:  in.Hourmeter,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toFuelRecordResponse(r), nil
}

// List lista todas las cargas.
func (uc *FuelUseCase) List() ([]dto.FuelRecordResponse, error) {
	return uc.toResponses(uc.repo.List())
}

// ListByEntity lista las cargas de una máquina o vehículo concreto.
func (uc *FuelUseCase) ListByEntity(kind, id string) ([]dto.FuelRecordResponse, error) {
	ref := entity.EntityRef{Kind: entity.EntityKind(kind), ID: id}
	if ref.Kind != entity.KindMachinery && ref.Kind != entity.KindVehicle {
		return nil, domain.ErrInvalidInput
	}
	return uc.toResponses(uc.repo.ListByEntity(ref))
}

// Stats acumula litros y costo sobre todas las cargas registradas.
func (uc *FuelUseCase) Stats() (*dto.FuelStatsDTO, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	liters := decimal.Zero
	cost := decimal.Zero
	for _, r := range list {
		liters = liters.Add(r.Liters)
		cost = cost.Add(r.TotalCost)
	}
	return &dto.FuelStatsDTO{
		TotalLiters: liters,
		TotalCost:   cost.Round(2),
		Records:     len(list),
	}, nil
}

func (uc *FuelUseCase) resolveEntityName(ref entity.EntityRef) (string, error) {
	switch ref.Kind {
	case entity.KindMachinery:
		m, err := uc.machineryRepo.GetByID(ref.ID)
		if err != nil {
			return "", err
		}
		if m == nil {
			return "", domain.ErrNotFound
		}
		return m.Name, nil
	case entity.KindVehicle:
		v, err := uc.vehicleRepo.GetByID(ref.ID)
		if err != nil {
			return "", err
		}
		if v == nil {
			return "", domain.ErrNotFound
		}
		return v.Plate, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

func (uc *FuelUseCase) toResponses(list []*entity.FuelRecord, err error) ([]dto.FuelRecordResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.FuelRecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toFuelRecordResponse(r))
	}
	return items, nil
}

func toFuelRecordResponse(r *entity.FuelRecord) *dto.FuelRecordResponse {
	return &dto.FuelRecordResponse{
		ID:         r.ID,
		Entity:     refToDTO(r.Entity),
		EntityName: r.EntityName,
		Date:       r.Date,
		Liters:     r.Liters,
		UnitCost:   r.UnitCost,
		TotalCost:  r.TotalCost,
		Location:   r.Location,
		Odometer:   r.Odometer,
		Hourmeter:  r.Hourmeter,
	}
}
