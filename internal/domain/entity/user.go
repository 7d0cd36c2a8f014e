package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleCustomer = "customer"
)

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del panel de administración.
// TotalOrders y TotalSpent son contadores desnormalizados derivados del
// historial de órdenes; solo los actualiza el camino de escritura de órdenes.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano ni expuesto en respuestas
	Role         string // admin, user, customer
	Status       string // active, inactive
	CreatedAt    time.Time
	TotalOrders  int
	TotalSpent   decimal.Decimal
}
