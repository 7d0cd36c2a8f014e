package dto

import "github.com/shopspring/decimal"

// CreateUserRequest alta de usuario desde el panel.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UpdateUserRequest actualización parcial: los campos nil conservan su valor
// anterior (merge superficial).
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// UserResponse representación de un usuario en respuestas.
type UserResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"` // fecha calendario YYYY-MM-DD
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
