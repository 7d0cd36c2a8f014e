package repository

import "github.com/tu-usuario/dashboard-pro/internal/domain/entity"

// OrderRepository define el puerto de acceso a la colección de órdenes.
//
// Place es la operación compuesta de colocar una orden: asigna id y fecha,
// agrega la orden y actualiza los contadores desnormalizados del usuario
// (TotalOrders, TotalSpent) y del producto (Sold++, Stock--) en un solo paso
// atómico. Si el usuario o el producto referenciado no existe, ese paso se
// omite en silencio; la orden se registra igual.
type OrderRepository interface {
	Place(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	List() ([]entity.Order, error)
	Update(order *entity.Order) error
	Delete(id int64) error
}
