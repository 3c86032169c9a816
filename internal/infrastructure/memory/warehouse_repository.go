package memory

import (
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// WarehouseRepository implementación en memoria.
type WarehouseRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Warehouse
}

// NewWarehouseRepository crea el repositorio vacío.
func NewWarehouseRepository() *WarehouseRepository {
	return &WarehouseRepository{items: make(map[string]*entity.Warehouse)}
}

func (r *WarehouseRepository) Create(w *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *WarehouseRepository) Update(w *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[w.ID]; !ok {
		return nil
	}
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *WarehouseRepository) List() ([]*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Warehouse, 0, len(r.items))
	for _, w := range r.items {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

func (r *WarehouseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
