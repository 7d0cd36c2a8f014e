package usecase

import (
	"fmt"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes: colocación compuesta, listado con
// referencias resueltas y actualización de estado.
type OrderUseCase struct {
	orders        repository.OrderRepository
	users         repository.UserRepository
	products      repository.ProductRepository
	notifications repository.NotificationRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	notifications repository.NotificationRepository,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, products: products, notifications: notifications}
}

func validOrderStatus(status string) bool {
	return status == entity.OrderStatusPending ||
		status == entity.OrderStatusCompleted ||
		status == entity.OrderStatusCancelled
}

// Place coloca una orden: el repositorio la registra junto con los contadores
// derivados en un solo paso atómico, y acá se emite la notificación
// "New order placed". Un userId o productId inexistente no es error: la orden
// se registra y ese ajuste se omite.
func (uc *OrderUseCase) Place(in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.OrderStatusPending
	}
	if !validOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.Order{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Amount:    in.Amount,
		Status:    in.Status,
	}
	if err := uc.orders.Place(order); err != nil {
		return nil, err
	}

	_ = uc.notifications.Create(&entity.Notification{
		Title:   "New order placed",
		Message: fmt.Sprintf("Order #%d has been placed", order.ID),
		Type:    entity.NotificationSuccess,
		OrderID: order.ID,
		UserID:  order.UserID,
	})

	return uc.toOrderResponse(order), nil
}

// GetByID obtiene una orden con usuario y producto resueltos.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order), nil
}

// List lista las órdenes con el usuario y producto referenciados resueltos.
// La proyección se calcula en cada llamada, nunca se cachea; una referencia
// colgante deja el campo anidado en nil.
func (uc *OrderUseCase) List() (*dto.OrderListResponse, error) {
	list, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for i := range list {
		items = append(items, *uc.toOrderResponse(&list[i]))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica un merge superficial de monto y estado. No recalcula los
// contadores derivados del usuario ni del producto.
func (uc *OrderUseCase) Update(id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.Amount = *in.Amount
	}
	if in.Status != nil {
		if !validOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order), nil
}

func (uc *OrderUseCase) toOrderResponse(o *entity.Order) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		Amount:    o.Amount,
		Date:      o.Date.Format(dto.DateLayout),
		Status:    o.Status,
	}
	// Join de lectura: un fallo significa "el referente ya no existe".
	if user, err := uc.users.GetByID(o.UserID); err == nil {
		out.User = toUserResponse(user)
	}
	if product, err := uc.products.GetByID(o.ProductID); err == nil {
		out.Product = toProductResponse(product)
	}
	return out
}
