package memory

import (
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
)

// ProductRepository implementa repository.ProductRepository sobre el Store.
type ProductRepository struct {
	s *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

// Create asigna id y agrega el producto al final. Sold inicia en lo que
// traiga la entidad (el caso de uso lo fija en 0).
func (r *ProductRepository) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product.ID = r.s.nextProductID
	r.s.nextProductID++
	r.s.products = append(r.s.products, *product)
	return nil
}

// GetByID devuelve una copia del producto o domain.ErrNotFound.
func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.s.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

// List devuelve una copia defensiva en orden de inserción.
func (r *ProductRepository) List() ([]entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Product, len(r.s.products))
	copy(out, r.s.products)
	return out, nil
}

// Update reemplaza el registro completo por id.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing := r.s.findProduct(product.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = *product
	return nil
}

// Delete borra por id, sin cascada.
func (r *ProductRepository) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
