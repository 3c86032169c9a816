package memory

import (
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// AlertRepository implementación en memoria.
type AlertRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Alert
}

// NewAlertRepository crea el repositorio vacío.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{items: make(map[string]*entity.Alert)}
}

// CreateIfAbsent inserta solo si el ID no existe. La fila existente, incluido
// su flag Resolved, se conserva intacta.
func (r *AlertRepository) CreateIfAbsent(a *entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; ok {
		return nil
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *AlertRepository) GetByID(id string) (*entity.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *AlertRepository) List() ([]*entity.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Alert, 0, len(r.items))
	for _, a := range r.items {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

// MarkResolved es idempotente y total: ID inexistente o alerta ya resuelta
// son no-ops.
func (r *AlertRepository) MarkResolved(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.items[id]; ok {
		a.Resolved = true
	}
	return nil
}

func (r *AlertRepository) CountUnresolved(severity entity.Severity) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, a := range r.items {
		if !a.Resolved && a.Severity == severity {
			n++
		}
	}
	return n, nil
}
