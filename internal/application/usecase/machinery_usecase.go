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

// MachineryUseCase casos de uso para la flota de maquinaria pesada.
// Las respuestas incluyen el estado de mantenimiento derivado al momento de la lectura.
type MachineryUseCase struct {
	repo          repository.MachineryRepository
	warehouseRepo repository.WarehouseRepository
	thresholds    derivation.Thresholds
}

// NewMachineryUseCase construye el caso de uso.
func NewMachineryUseCase(
	repo repository.MachineryRepository,
	warehouseRepo repository.WarehouseRepository,
	thresholds derivation.Thresholds,
) *MachineryUseCase {
	return &MachineryUseCase{repo: repo, warehouseRepo: warehouseRepo, thresholds: thresholds}
}

// Create registra una máquina nueva en estado disponible.
func (uc *MachineryUseCase) Create(in dto.CreateMachineryRequest) (*dto.MachineryResponse, error) {
	if in.Name == "" || in.SerialNumber == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	last, err := parseDatePtr(in.LastMaintenance)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	next, err := parseDatePtr(in.NextMaintenance)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	condition := in.Condition
	if condition == "" {
		condition = entity.CondicionBueno
	}
	m := &entity.Machinery{
		ID:                       uuid.New().String(),
		Name:                     in.Name,
		Category:                 in.Category,
		Brand:                    in.Brand,
		Model:                    in.Model,
		SerialNumber:             in.SerialNumber,
		Year:                     in.Year,
		Hourmeter:                in.Hourmeter,
		Condition:                condition,
		Status:                   entity.StatusDisponible,
		WarehouseID:              in.WarehouseID,
		LastMaintenance:          last,
		NextMaintenance:          next,
		MaintenanceIntervalHours: in.MaintenanceIntervalHours,
		MaintenanceIntervalDays:  in.MaintenanceIntervalDays,
		CreatedAt:                time.Now(),
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return uc.toResponse(m, time.Now()), nil
}

// GetByID obtiene una máquina por ID.
func (uc *MachineryUseCase) GetByID(id string) (*dto.MachineryResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return uc.toResponse(m, time.Now()), nil
}

// List lista la flota completa con el estado de mantenimiento derivado.
func (uc *MachineryUseCase) List() ([]dto.MachineryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.MachineryResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *uc.toResponse(m, now))
	}
	return items, nil
}

// UpdateStatus cambia el estado operativo validando el enum.
func (uc *MachineryUseCase) UpdateStatus(id, status string) error {
	switch status {
	case entity.StatusDisponible, entity.StatusAlquilado, entity.StatusMantenimiento, entity.StatusFueraServicio:
	default:
		return domain.ErrInvalidInput
	}
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, status)
}

func (uc *MachineryUseCase) toResponse(m *entity.Machinery, now time.Time) *dto.MachineryResponse {
	return &dto.MachineryResponse{
		ID:                m.ID,
		Name:              m.Name,
		Category:          m.Category,
		Brand:             m.Brand,
		Model:             m.Model,
		SerialNumber:      m.SerialNumber,
		Year:              m.Year,
		Hourmeter:         m.Hourmeter,
		Condition:         m.Condition,
		Status:            m.Status,
		WarehouseID:       m.WarehouseID,
		LastMaintenance:   m.LastMaintenance,
		NextMaintenance:   m.NextMaintenance,
		MaintenanceStatus: string(derivation.ClassifyMaintenance(m, now, uc.thresholds.MaintenanceWindowDays)),
		CreatedAt:         m.CreatedAt,
	}
}
