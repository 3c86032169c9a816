package memory

import (
	"sync"
	"time"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// MachineryRepository implementación en memoria.
type MachineryRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Machinery
}

// NewMachineryRepository crea el repositorio vacío.
func NewMachineryRepository() *MachineryRepository {
	return &MachineryRepository{items: make(map[string]*entity.Machinery)}
}

func (r *MachineryRepository) Create(m *entity.Machinery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *MachineryRepository) GetByID(id string) (*entity.Machinery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MachineryRepository) Update(m *entity.Machinery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[m.ID]; !ok {
		return nil
	}
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *MachineryRepository) List() ([]*entity.Machinery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Machinery, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MachineryRepository) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.items[id]; ok {
		m.Status = status
	}
	return nil
}

func (r *MachineryRepository) UpdateMaintenanceDates(id string, last time.Time, next *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.items[id]; ok {
		l := last
		m.LastMaintenance = &l
		if next != nil {
			n := *next
			m.NextMaintenance = &n
		}
	}
	return nil
}
