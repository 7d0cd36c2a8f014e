package memory

import (
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre el Store.
type UserRepository struct {
	s *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

// Create asigna id y fecha de alta, y agrega el usuario al final.
func (r *UserRepository) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.s.today()
	}
	r.s.users = append(r.s.users, *user)
	return nil
}

// GetByID devuelve una copia del usuario o domain.ErrNotFound.
func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u := r.s.findUser(id)
	if u == nil {
		return nil, domain.ErrNotFound
	}
	copia := *u
	return &copia, nil
}

// GetByEmail devuelve una copia del usuario con ese email o domain.ErrNotFound.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			copia := r.s.users[i]
			return &copia, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve una copia defensiva en orden de inserción.
func (r *UserRepository) List() ([]entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.User, len(r.s.users))
	copy(out, r.s.users)
	return out, nil
}

// Update reemplaza el registro completo por id.
func (r *UserRepository) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing := r.s.findUser(user.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = *user
	return nil
}

// Delete borra por id. Sin limpieza en cascada: las referencias desde
// Order/Notification/Message quedan colgando a propósito.
func (r *UserRepository) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
