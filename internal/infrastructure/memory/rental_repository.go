package memory

import (
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// RentalRepository implementación en memoria.
type RentalRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Rental
}

// NewRentalRepository crea el repositorio vacío.
func NewRentalRepository() *RentalRepository {
	return &RentalRepository{items: make(map[string]*entity.Rental)}
}

func (r *RentalRepository) Create(rec *entity.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.items[rec.ID] = &cp
	return nil
}

func (r *RentalRepository) GetByID(id string) (*entity.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *RentalRepository) Update(rec *entity.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[rec.ID]; !ok {
		return nil
	}
	cp := *rec
	r.items[rec.ID] = &cp
	return nil
}

func (r *RentalRepository) List() ([]*entity.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Rental, 0, len(r.items))
	for _, rec := range r.items {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *RentalRepository) ListByStatus(status string) ([]*entity.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Rental, 0)
	for _, rec := range r.items {
		if rec.Status == status {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}
