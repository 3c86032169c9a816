package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

// ToolUseCase casos de uso para herramientas menores.
type ToolUseCase struct {
	repo          repository.ToolRepository
	warehouseRepo repository.WarehouseRepository
}

// NewToolUseCase construye el caso de uso.
func NewToolUseCase(repo repository.ToolRepository, warehouseRepo repository.WarehouseRepository) *ToolUseCase {
	return &ToolUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create registra una herramienta. El código interno es único.
func (uc *ToolUseCase) Create(in dto.CreateToolRequest) (*dto.ToolResponse, error) {
	if in.Name == "" || in.InternalCode == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByInternalCode(in.InternalCode)
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
	t := &entity.Tool{
		ID:           uuid.New().String(),
		Name:         in.Name,
		InternalCode: in.InternalCode,
		Status:       entity.ToolDisponible,
		Observations: in.Observations,
		WarehouseID:  in.WarehouseID,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toToolResponse(t), nil
}

// List lista todas las herramientas.
func (uc *ToolUseCase) List() ([]dto.ToolResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ToolResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toToolResponse(t))
	}
	return items, nil
}

// UpdateStatus cambia el estado (binario: disponible / no_disponible).
func (uc *ToolUseCase) UpdateStatus(id, status string) error {
	if status != entity.ToolDisponible && status != entity.ToolNoDisponible {
		return domain.ErrInvalidInput
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	t.Status = status
	return uc.repo.Update(t)
}

func toToolResponse(t *entity.Tool) *dto.ToolResponse {
	return &dto.ToolResponse{
		ID:           t.ID,
		Name:         t.Name,
		InternalCode: t.InternalCode,
		Status:       t.Status,
		Observations: t.Observations,
		WarehouseID:  t.WarehouseID,
		CreatedAt:    t.CreatedAt,
	}
}
