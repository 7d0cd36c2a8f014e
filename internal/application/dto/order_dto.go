package dto

import "github.com/shopspring/decimal"

// PlaceOrderRequest colocación de una orden. El id y la fecha los asigna el
// sistema; el status por defecto es "pending".
type PlaceOrderRequest struct {
	UserID    int64           `json:"userId"`
	ProductID int64           `json:"productId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}

// UpdateOrderRequest actualización parcial de una orden (merge superficial).
type UpdateOrderRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Status *string          `json:"status"`
}

// OrderResponse orden con el usuario y producto referenciados resueltos como
// proyección de solo lectura. User/Product quedan en nil si la referencia
// quedó colgando (el referente fue borrado).
type OrderResponse struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userId"`
	ProductID int64            `json:"productId"`
	Amount    decimal.Decimal  `json:"amount"`
	Date      string           `json:"date"` // YYYY-MM-DD
	Status    string           `json:"status"`
	User      *UserResponse    `json:"user,omitempty"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// OrderListResponse listado de órdenes con referencias resueltas.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
