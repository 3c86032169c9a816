package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// WarehouseRepository puerto de persistencia para almacenes (DIP).
type WarehouseRepository interface {
	Create(w *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(w *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	Delete(id string) error
}
