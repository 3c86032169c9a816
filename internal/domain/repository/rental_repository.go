package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// RentalRepository puerto de persistencia para alquileres.
type RentalRepository interface {
	Create(r *entity.Rental) error
	GetByID(id string) (*entity.Rental, error)
	Update(r *entity.Rental) error
	List() ([]*entity.Rental, error)
	ListByStatus(status string) ([]*entity.Rental, error)
}
