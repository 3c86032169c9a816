package memory

import (
	"sync"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// UserRepository implementación en memoria.
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.User
}

// NewUserRepository crea el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
