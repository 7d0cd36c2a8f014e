package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO KPIs del panel principal.
type DashboardStatsDTO struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`  // suma de Order.Amount, 2 decimales
	TotalOrders   int             `json:"totalOrders"`
	TotalUsers    int             `json:"totalUsers"`
	ActiveUsers   int             `json:"activeUsers"`
	PendingOrders int             `json:"pendingOrders"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"` // 0 si no hay órdenes
}

// WeeklySalesBucketDTO una barra del gráfico semanal.
type WeeklySalesBucketDTO struct {
	Day       string `json:"day"` // Mon..Sun
	Orders    int    `json:"orders"`
	Revenue   int64  `json:"revenue"` // redondeado a entero
	Customers int    `json:"customers"`
}

// CategoryShareDTO porción del gráfico de categorías. Value es el porcentaje
// entero del total vendido; por redondeo independiente las porciones pueden
// no sumar exactamente 100.
type CategoryShareDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// ActivityDTO entrada del feed de actividad reciente.
type ActivityDTO struct {
	User   string `json:"user"`   // nombre o "Unknown"
	Action string `json:"action"`
	Time   string `json:"time"`   // relativo: Today / Yesterday / N days ago
	Amount string `json:"amount"` // formateado, ej. "$1299.99"
}
