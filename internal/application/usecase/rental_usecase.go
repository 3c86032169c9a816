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

// RentalUseCase casos de uso para alquileres de maquinaria.
// Crear un alquiler marca la máquina como alquilada y emite el ingreso
// correspondiente en finanzas; completarlo o cancelarlo la libera.
type RentalUseCase struct {
	repo          repository.RentalRepository
	machineryRepo repository.MachineryRepository
	financeRepo   repository.FinancialRecordRepository
	log           *logger.Logger
}

// NewRentalUseCase construye el caso de uso.
func NewRentalUseCase(
	repo repository.RentalRepository,
	machineryRepo repository.MachineryRepository,
	financeRepo repository.FinancialRecordRepository,
	log *logger.Logger,
) *RentalUseCase {
	return &RentalUseCase{repo: repo, machineryRepo: machineryRepo, financeRepo: financeRepo, log: log}
}

// Create registra un alquiler. La máquina debe estar disponible; el monto
// total es días × tarifa diaria (el último día cuenta completo).
func (uc *RentalUseCase) Create(in dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	if in.ClientName == "" || in.MachineryID == "" || in.DailyRate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	start, err := parseDate(in.StartDate)
	if err != nil || start.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	end, err := parseDate(in.EndDate)
	if err != nil || end.IsZero() || end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.machineryRepo.GetByID(in.MachineryID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.Status != entity.StatusDisponible {
		return nil, domain.ErrMachineryNotAvailable
	}

	days := int(end.Sub(start).Hours()/24) + 1
	total := in.DailyRate.Mul(decimal.NewFromInt(int64(days))).Round(2)

	r := &entity.Rental{
		ID:            uuid.New().String(),
		ClientName:    in.ClientName,
		ClientContact: in.ClientContact,
		MachineryID:   m.ID,
		MachineryName: m.Name,
		StartDate:     start,
		EndDate:       end,
		DailyRate:     in.DailyRate,
		TotalAmount:   total,
		Status:        entity.AlquilerActivo,
		Description:   in.Description,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	if err := uc.machineryRepo.UpdateStatus(m.ID, entity.StatusAlquilado); err != nil {
		return nil, err
	}

	income := &entity.FinancialRecord{
		ID:          uuid.New().String(),
		Type:        entity.FinanzasIngreso,
		Category:    "Alquiler",
		Description: "Alquiler de " + m.Name + " a " + in.ClientName,
		Amount:      total,
		Date:        start,
		Related:     entity.EntityRef{Kind: entity.KindMachinery, ID: m.ID},
		CreatedAt:   time.Now(),
	}
	if err := uc.financeRepo.Create(income); err != nil {
		// El alquiler ya quedó registrado; el asiento se puede reponer a mano.
		uc.log.Error().Err(err).Str("rental_id", r.ID).Msg("no se pudo registrar el ingreso del alquiler")
	}

	return toRentalResponse(r), nil
}

// GetByID obtiene un alquiler por ID.
func (uc *RentalUseCase) GetByID(id string) (*dto.RentalResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toRentalResponse(r), nil
}

// List lista todos los alquileres.
func (uc *RentalUseCase) List() ([]dto.RentalResponse, error) {
	return uc.toResponses(uc.repo.List())
}

// ListByStatus lista los alquileres en un estado dado.
func (uc *RentalUseCase) ListByStatus(status string) ([]dto.RentalResponse, error) {
	switch status {
	case entity.AlquilerActivo, entity.AlquilerCompletado, entity.AlquilerCancelado:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.toResponses(uc.repo.ListByStatus(status))
}

// Complete cierra un alquiler activo y libera la máquina.
func (uc *RentalUseCase) Complete(id string) error {
	return uc.finish(id, entity.AlquilerCompletado)
}

// Cancel cancela un alquiler activo y libera la máquina.
func (uc *RentalUseCase) Cancel(id string) error {
	return uc.finish(id, entity.AlquilerCancelado)
}

func (uc *RentalUseCase) finish(id, status string) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	if r.Status != entity.AlquilerActivo {
		return domain.ErrConflict
	}
	r.Status = status
	if err := uc.repo.Update(r); err != nil {
		return err
	}
	return uc.machineryRepo.UpdateStatus(r.MachineryID, entity.StatusDisponible)
}

func (uc *RentalUseCase) toResponses(list []*entity.Rental, err error) ([]dto.RentalResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.RentalResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRentalResponse(r))
	}
	return items, nil
}

func toRentalResponse(r *entity.Rental) *dto.RentalResponse {
	return &dto.RentalResponse{
		ID:            r.ID,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		MachineryID:   r.MachineryID,
		MachineryName: r.MachineryName,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		DailyRate:     r.DailyRate,
		TotalAmount:   r.TotalAmount,
		Status:        r.Status,
		Description:   r.Description,
		CreatedAt:     r.CreatedAt,
	}
}
