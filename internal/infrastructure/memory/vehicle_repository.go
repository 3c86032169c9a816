package memory

import (
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// VehicleRepository implementación en memoria.
type VehicleRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Vehicle
}

// NewVehicleRepository crea el repositorio vacío.
func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{items: make(map[string]*entity.Vehicle)}
}

func (r *VehicleRepository) Create(v *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *VehicleRepository) GetByID(id string) (*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *VehicleRepository) GetByPlate(plate string) (*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.items {
		if v.Plate == plate {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *VehicleRepository) Update(v *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[v.ID]; !ok {
		return nil
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *VehicleRepository) List() ([]*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Vehicle, 0, len(r.items))
	for _, v := range r.items {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}
