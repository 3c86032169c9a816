package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// VehicleRepository puerto de persistencia para vehículos.
type VehicleRepository interface {
	Create(v *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	GetByPlate(plate string) (*entity.Vehicle, error)
	Update(v *entity.Vehicle) error
	List() ([]*entity.Vehicle, error)
}
