package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// SparePartRepository puerto de persistencia para repuestos multi-almacén.
type SparePartRepository interface {
	Create(p *entity.SparePart) error
	GetByID(id string) (*entity.SparePart, error)
	GetByCode(code string) (*entity.SparePart, error)
	Update(p *entity.SparePart) error
	List() ([]*entity.SparePart, error)

	// AdjustStock suma delta (puede ser negativo) al stock del repuesto en el
	// almacén indicado. Retorna domain.ErrInsufficientStock si el resultado
	// quedaría negativo: el stock por almacén nunca baja de cero.
	AdjustStock(partID, warehouseID string, delta int) error
}
