package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// FuelRecordRepository implementación en memoria.
type FuelRecordRepository struct {
	mu    sync.RWMutex
	items []*entity.FuelRecord
}

// NewFuelRecordRepository crea el repositorio vacío.
func NewFuelRecordRepository() *FuelRecordRepository {
	return &FuelRecordRepository{}
}

func (r *FuelRecordRepository) Create(rec *entity.FuelRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.items = append(r.items, &cp)
	return nil
}

func (r *FuelRecordRepository) List() ([]*entity.FuelRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entity.FuelRecord) bool { return true }), nil
}

func (r *FuelRecordRepository) ListByEntity(ref entity.EntityRef) ([]*entity.FuelRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(rec *entity.FuelRecord) bool { return rec.Entity == ref }), nil
}

func (r *FuelRecordRepository) collect(match func(*entity.FuelRecord) bool) []*entity.FuelRecord {
	out := make([]*entity.FuelRecord, 0, len(r.items))
	for _, rec := range r.items {
		if match(rec) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
