package memory

import (
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
)

// OrderRepository implementa repository.OrderRepository sobre el Store.
type OrderRepository struct {
	s *Store
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(s *Store) *OrderRepository {
	return &OrderRepository{s: s}
}

// Place registra la orden y actualiza los contadores desnormalizados bajo una
// sola toma del lock: orden agregada, User.TotalOrders/TotalSpent y
// Product.Sold/Stock ajustados sin que otra llamada pueda intercalarse.
// Un usuario o producto inexistente omite su paso en silencio.
func (r *OrderRepository) Place(order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order.ID = r.s.nextOrderID
	r.s.nextOrderID++
	if order.Date.IsZero() {
		order.Date = r.s.today()
	}
	r.s.orders = append(r.s.orders, *order)

	if u := r.s.findUser(order.UserID); u != nil {
		u.TotalOrders++
		u.TotalSpent = u.TotalSpent.Add(order.Amount)
	}
	if p := r.s.findProduct(order.ProductID); p != nil {
		p.Sold++
		p.Stock--
	}
	return nil
}

// GetByID devuelve una copia de la orden o domain.ErrNotFound.
func (r *OrderRepository) GetByID(id int64) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o := r.s.findOrder(id)
	if o == nil {
		return nil, domain.ErrNotFound
	}
	copia := *o
	return &copia, nil
}

// List devuelve una copia defensiva en orden de inserción.
func (r *OrderRepository) List() ([]entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Order, len(r.s.orders))
	copy(out, r.s.orders)
	return out, nil
}

// Update reemplaza el registro completo por id. No recalcula contadores:
// cambiar el monto de una orden ya colocada no reescribe TotalSpent.
func (r *OrderRepository) Update(order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing := r.s.findOrder(order.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = *order
	return nil
}

// Delete borra por id, sin cascada ni reversa de contadores.
func (r *OrderRepository) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			r.s.orders = append(r.s.orders[:i], r.s.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
