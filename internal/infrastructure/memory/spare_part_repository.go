package memory

import (
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// SparePartRepository implementación en memoria.
type SparePartRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.SparePart
}

// NewSparePartRepository crea el repositorio vacío.
func NewSparePartRepository() *SparePartRepository {
	return &SparePartRepository{items: make(map[string]*entity.SparePart)}
}

func (r *SparePartRepository) Create(p *entity.SparePart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = copySparePart(p)
	return nil
}

func (r *SparePartRepository) GetByID(id string) (*entity.SparePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return copySparePart(p), nil
}

func (r *SparePartRepository) GetByCode(code string) (*entity.SparePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.Code == code {
			return copySparePart(p), nil
		}
	}
	return nil, nil
}

func (r *SparePartRepository) Update(p *entity.SparePart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return nil
	}
	r.items[p.ID] = copySparePart(p)
	return nil
}

func (r *SparePartRepository) List() ([]*entity.SparePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.SparePart, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, copySparePart(p))
	}
	return out, nil
}

func (r *SparePartRepository) AdjustStock(partID, warehouseID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[partID]
	if !ok {
		return domain.ErrNotFound
	}
	next := p.StockByWarehouse[warehouseID] + delta
	if next < 0 {
		return domain.ErrInsufficientStock
	}
	if p.StockByWarehouse == nil {
		p.StockByWarehouse = make(map[string]int)
	}
	p.StockByWarehouse[warehouseID] = next
	return nil
}

// copySparePart copia profunda: el mapa de stock no debe compartirse con el
// llamador.
func copySparePart(p *entity.SparePart) *entity.SparePart {
	cp := *p
	cp.StockByWarehouse = make(map[string]int, len(p.StockByWarehouse))
	for k, v := range p.StockByWarehouse {
		cp.StockByWarehouse[k] = v
	}
	cp.CompatibleMachinery = append([]string(nil), p.CompatibleMachinery...)
	cp.Suppliers = append([]string(nil), p.Suppliers...)
	return &cp
}
