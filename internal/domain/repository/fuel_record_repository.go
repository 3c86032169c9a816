package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// FuelRecordRepository puerto de persistencia para cargas de combustible.
type FuelRecordRepository interface {
	Create(r *entity.FuelRecord) error
	List() ([]*entity.FuelRecord, error)
	ListByEntity(ref entity.EntityRef) ([]*entity.FuelRecord, error)
}
