package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// MaintenanceRecordRepository puerto de persistencia para servicios de mantenimiento.
type MaintenanceRecordRepository interface {
	Create(r *entity.MaintenanceRecord) error
	List() ([]*entity.MaintenanceRecord, error)
	ListByEntity(ref entity.EntityRef) ([]*entity.MaintenanceRecord, error)
}
