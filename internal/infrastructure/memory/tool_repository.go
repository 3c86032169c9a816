package memory

import (
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// ToolRepository implementación en memoria.
type ToolRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Tool
}

// NewToolRepository crea el repositorio vacío.
func NewToolRepository() *ToolRepository {
	return &ToolRepository{items: make(map[string]*entity.Tool)}
}

func (r *ToolRepository) Create(t *entity.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *ToolRepository) GetByID(id string) (*entity.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *ToolRepository) GetByInternalCode(code string) (*entity.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.items {
		if t.InternalCode == code {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ToolRepository) Update(t *entity.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[t.ID]; !ok {
		return nil
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *ToolRepository) List() ([]*entity.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Tool, 0, len(r.items))
	for _, t := range r.items {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}
