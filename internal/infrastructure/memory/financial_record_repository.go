package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// FinancialRecordRepository implementación en memoria.
type FinancialRecordRepository struct {
	mu    sync.RWMutex
	items []*entity.FinancialRecord
}

// NewFinancialRecordRepository crea el repositorio vacío.
func NewFinancialRecordRepository() *FinancialRecordRepository {
	return &FinancialRecordRepository{}
}

func (r *FinancialRecordRepository) Create(rec *entity.FinancialRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.items = append(r.items, &cp)
	return nil
}

func (r *FinancialRecordRepository) List() ([]*entity.FinancialRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entity.FinancialRecord) bool { return true }), nil
}

func (r *FinancialRecordRepository) ListByDateRange(from, to time.Time) ([]*entity.FinancialRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// [from, to): inicio inclusivo, fin exclusivo.
	return r.collect(func(rec *entity.FinancialRecord) bool {
		return !rec.Date.Before(from) && rec.Date.Before(to)
	}), nil
}

func (r *FinancialRecordRepository) ListByRelated(ref entity.EntityRef) ([]*entity.FinancialRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(rec *entity.FinancialRecord) bool { return rec.Related == ref }), nil
}

func (r *FinancialRecordRepository) collect(match func(*entity.FinancialRecord) bool) []*entity.FinancialRecord {
	out := make([]*entity.FinancialRecord, 0, len(r.items))
	for _, rec := range r.items {
		if match(rec) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
