package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// MaintenanceRecordRepository implementación en memoria.
type MaintenanceRecordRepository struct {
	mu    sync.RWMutex
	items []*entity.MaintenanceRecord
}

// NewMaintenanceRecordRepository crea el repositorio vacío.
func NewMaintenanceRecordRepository() *MaintenanceRecordRepository {
	return &MaintenanceRecordRepository{}
}

func (r *MaintenanceRecordRepository) Create(rec *entity.MaintenanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, copyMaintenanceRecord(rec))
	return nil
}

func (r *MaintenanceRecordRepository) List() ([]*entity.MaintenanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*entity.MaintenanceRecord) bool { return true }), nil
}

func (r *MaintenanceRecordRepository) ListByEntity(ref entity.EntityRef) ([]*entity.MaintenanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(rec *entity.MaintenanceRecord) bool { return rec.Entity == ref }), nil
}

func (r *MaintenanceRecordRepository) collect(match func(*entity.MaintenanceRecord) bool) []*entity.MaintenanceRecord {
	out := make([]*entity.MaintenanceRecord, 0, len(r.items))
	for _, rec := range r.items {
		if match(rec) {
			out = append(out, copyMaintenanceRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func copyMaintenanceRecord(rec *entity.MaintenanceRecord) *entity.MaintenanceRecord {
	cp := *rec
	cp.SpareParts = append([]entity.MaintenanceSparePart(nil), rec.SpareParts...)
	return &cp
}
