package repository

import (
	"time"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// MachineryRepository puerto de persistencia para maquinaria pesada.
type MachineryRepository interface {
	Create(m *entity.Machinery) error
	GetByID(id string) (*entity.Machinery, error)
	Update(m *entity.Machinery) error
	List() ([]*entity.Machinery, error)

	// UpdateStatus cambia solo el estado operativo (disponible, alquilado, ...).
	UpdateStatus(id, status string) error

	// UpdateMaintenanceDates fija último/próximo mantenimiento tras registrar un servicio.
	UpdateMaintenanceDates(id string, last time.Time, next *time.Time) error
}
