package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/derivation"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

// VehicleUseCase casos de uso para vehículos. Las respuestas incluyen la
// vigencia derivada de SOAT y revisión técnica, cada una por separado.
type VehicleUseCase struct {
	repo          repository.VehicleRepository
	warehouseRepo repository.WarehouseRepository
	thresholds    derivation.Thresholds
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(
	repo repository.VehicleRepository,
	warehouseRepo repository.WarehouseRepository,
	thresholds derivation.Thresholds,
) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, warehouseRepo: warehouseRepo, thresholds: thresholds}
}

// Create registra un vehículo nuevo. La placa es clave de negocio única.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if in.Plate == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByPlate(in.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	// Fechas inválidas se rechazan en el alta; una fecha ausente queda en cero
	// y clasificará como unknown, nunca como vigente.
	soat, err := parseDate(in.SoatExpiration)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	techReview, err := parseDate(in.TechnicalReviewExpiration)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	v := &entity.Vehicle{
		ID:                        uuid.New().String(),
		Plate:                     in.Plate,
		Brand:                     in.Brand,
		Model:                     in.Model,
		Year:                      in.Year,
		Mileage:                   in.Mileage,
		Status:                    entity.StatusDisponible,
		SoatExpiration:            soat,
		TechnicalReviewExpiration: techReview,
		WarehouseID:               in.WarehouseID,
		CreatedAt:                 time.Now(),
	}
	if err := uc.repo.Create(v); err != nil {
		return nil, err
	}
	return uc.toResponse(v, time.Now()), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *VehicleUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return uc.toResponse(v, time.Now()), nil
}

// List lista los vehículos con la vigencia documental derivada.
func (uc *VehicleUseCase) List() ([]dto.VehicleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *uc.toResponse(v, now))
	}
	return items, nil
}

// UpdateStatus cambia el estado operativo validando el enum.
func (uc *VehicleUseCase) UpdateStatus(id, status string) error {
	switch status {
	case entity.StatusDisponible, entity.StatusAlquilado, entity.StatusMantenimiento, entity.StatusFueraServicio:
	default:
		return domain.ErrInvalidInput
	}
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	v.Status = status
	return uc.repo.Update(v)
}

func (uc *VehicleUseCase) toResponse(v *entity.Vehicle, now time.Time) *dto.VehicleResponse {
	window := uc.thresholds.DocumentWindowDays
	return &dto.VehicleResponse{
		ID:                        v.ID,
		Plate:                     v.Plate,
		Brand:                     v.Brand,
		Model:                     v.Model,
		Year:                      v.Year,
		Mileage:                   v.Mileage,
		Status:                    v.Status,
		SoatExpiration:            v.SoatExpiration,
		SoatStatus:                string(derivation.ClassifyDocument(v.SoatExpiration, now, window)),
		TechnicalReviewExpiration: v.TechnicalReviewExpiration,
		TechnicalReviewStatus:     string(derivation.ClassifyDocument(v.TechnicalReviewExpiration, now, window)),
		WarehouseID:               v.WarehouseID,
		CreatedAt:                 v.CreatedAt,
	}
}
