package repository

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// ToolRepository puerto de persistencia para herramientas.
type ToolRepository interface {
	Create(t *entity.Tool) error
	GetByID(id string) (*entity.Tool, error)
	GetByInternalCode(code string) (*entity.Tool, error)
	Update(t *entity.Tool) error
	List() ([]*entity.Tool, error)
}
