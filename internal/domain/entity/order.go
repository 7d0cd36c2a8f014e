package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order representa una orden de compra. UserID y ProductID son referencias
// débiles: identifican al usuario y producto pero no garantizan integridad;
// tras un borrado la referencia puede quedar colgando y el join de lectura
// simplemente no resuelve.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Amount    decimal.Decimal
	Date      time.Time // solo fecha calendario, sin hora
	Status    string    // pending, completed, cancelled
}
