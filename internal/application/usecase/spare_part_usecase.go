package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/derivation"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

// SparePartUseCase casos de uso para repuestos multi-almacén.
// Las respuestas incluyen la clasificación de stock derivada.
type SparePartUseCase struct {
	repo          repository.SparePartRepository
	warehouseRepo repository.WarehouseRepository
}

// NewSparePartUseCase construye el caso de uso.
func NewSparePartUseCase(repo repository.SparePartRepository, warehouseRepo repository.WarehouseRepository) *SparePartUseCase {
	return &SparePartUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create registra un repuesto con su stock inicial por almacén.
// El código es único; cantidades negativas y umbral negativo se rechazan.
func (uc *SparePartUseCase) Create(in dto.CreateSparePartRequest) (*dto.SparePartResponse, error) {
	if in.Code == "" || in.Name == "" || in.MinStock < 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	stock := make(map[string]int, len(in.StockByWarehouse))
	for warehouseID, qty := range in.StockByWarehouse {
		if qty < 0 {
			return nil, domain.ErrInvalidInput
		}
		wh, err := uc.warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
		stock[warehouseID] = qty
	}
	p := &entity.SparePart{
		ID:                  uuid.New().String(),
		Code:                in.Code,
		Name:                in.Name,
		Brand:               in.Brand,
		UnitPrice:           in.UnitPrice,
		MinStock:            in.MinStock,
		StockByWarehouse:    stock,
		CompatibleMachinery: in.CompatibleMachinery,
		Suppliers:           in.Suppliers,
		CreatedAt:           time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toSparePartResponse(p), nil
}

// GetByID obtiene un repuesto por ID.
func (uc *SparePartUseCase) GetByID(id string) (*dto.SparePartResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toSparePartResponse(p), nil
}

// List lista los repuestos con su clasificación de stock.
func (uc *SparePartUseCase) List() ([]dto.SparePartResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SparePartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toSparePartResponse(p))
	}
	return items, nil
}

// AdjustStock aplica un delta (entrada positiva, salida negativa) al stock
// del repuesto en un almacén. El stock nunca queda negativo.
func (uc *SparePartUseCase) AdjustStock(partID string, in dto.AdjustStockRequest) (*dto.SparePartResponse, error) {
	if in.WarehouseID == "" || in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.AdjustStock(partID, in.WarehouseID, in.Delta); err != nil {
		return nil, err
	}
	return uc.GetByID(partID)
}

func toSparePartResponse(p *entity.SparePart) *dto.SparePartResponse {
	return &dto.SparePartResponse{
		ID:                  p.ID,
		Code:                p.Code,
		Name:                p.Name,
		Brand:               p.Brand,
		UnitPrice:           p.UnitPrice,
		MinStock:            p.MinStock,
		StockByWarehouse:    p.StockByWarehouse,
		TotalStock:          p.TotalStock(),
		StockStatus:         string(derivation.ClassifyStock(p)),
		CompatibleMachinery: p.CompatibleMachinery,
		Suppliers:           p.Suppliers,
		CreatedAt:           p.CreatedAt,
	}
}
