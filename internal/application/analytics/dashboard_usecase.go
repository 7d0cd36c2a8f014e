// Package analytics calcula las vistas derivadas del panel: KPIs, ventas
// semanales, participación por categoría y actividad reciente. Todo se
// computa bajo demanda desde el estado actual de las colecciones; nada se
// cachea ni se persiste.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
)

// Colores fijos por categoría conocida; las desconocidas usan el de respaldo.
var categoryColors = map[string]string{
	entity.CategoryElectronics: "#0d6efd",
	entity.CategoryAccessories: "#198754",
	entity.CategorySoftware:    "#ffc107",
	entity.CategoryServices:    "#fd7e14",
	entity.CategoryOthers:      "#dc3545",
}

const fallbackCategoryColor = "#6c757d"

const recentActivityLimit = 4

var weekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DashboardUseCase genera las vistas derivadas leyendo directamente de los
// puertos de usuarios, productos y órdenes.
type DashboardUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository

	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{users: users, products: products, orders: orders, now: time.Now}
}

// Stats calcula los KPIs del panel. AvgOrderValue es cero cuando no hay
// órdenes (nunca divide por cero).
func (uc *DashboardUseCase) Stats() (*dto.DashboardStatsDTO, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	pending := 0
	for i := range orders {
		revenue = revenue.Add(orders[i].Amount)
		if orders[i].Status == entity.OrderStatusPending {
			pending++
		}
	}
	active := 0
	for i := range users {
		if users[i].Status == entity.StatusActive {
			active++
		}
	}

	avg := decimal.Zero
	if len(orders) > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}
	return &dto.DashboardStatsDTO{
		TotalRevenue:  revenue.Round(2),
		TotalOrders:   len(orders),
		TotalUsers:    len(users),
		ActiveUsers:   active,
		PendingOrders: pending,
		AvgOrderValue: avg,
	}, nil
}

// WeeklySales reparte las órdenes en 7 cubetas Mon..Sun por posición
// (índice % 7), no por el día de semana real de la fecha. Es una
// aproximación heredada del panel original y se conserva para que el
// gráfico produzca exactamente la misma salida.
// Siempre devuelve 7 cubetas, en cero si no hay órdenes.
func (uc *DashboardUseCase) WeeklySales() ([]dto.WeeklySalesBucketDTO, error) {
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}

	type bucket struct {
		revenue   decimal.Decimal
		orders    int
		customers map[int64]struct{}
	}
	buckets := [7]bucket{}
	for i := range buckets {
		buckets[i] = bucket{revenue: decimal.Zero, customers: make(map[int64]struct{})}
	}
	for i := range orders {
		b := &buckets[i%7]
		b.orders++
		b.revenue = b.revenue.Add(orders[i].Amount)
		b.customers[orders[i].UserID] = struct{}{}
	}

	out := make([]dto.WeeklySalesBucketDTO, 7)
	for i, day := range weekDays {
		out[i] = dto.WeeklySalesBucketDTO{
			Day:       day,
			Orders:    buckets[i].orders,
			Revenue:   buckets[i].revenue.Round(0).IntPart(),
			Customers: len(buckets[i].customers),
		}
	}
	return out, nil
}

// CategoryShares suma Product.Sold por categoría y convierte cada grupo en
// porcentaje entero del total. Las categorías salen en orden de primera
// aparición. Por redondeo independiente los porcentajes pueden no sumar 100.
// Con total vendido cero, cada categoría presente sale con valor 0.
func (uc *DashboardUseCase) CategoryShares() ([]dto.CategoryShareDTO, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	sold := make(map[string]int)
	var names []string
	for i := range products {
		if _, seen := sold[products[i].Category]; !seen {
			names = append(names, products[i].Category)
		}
		sold[products[i].Category] += products[i].Sold
	}
	total := 0
	for _, v := range sold {
		total += v
	}

	out := make([]dto.CategoryShareDTO, 0, len(names))
	for _, name := range names {
		value := 0
		if total > 0 {
			value = int(math.Round(float64(sold[name]) / float64(total) * 100))
		}
		color, ok := categoryColors[name]
		if !ok {
			color = fallbackCategoryColor
		}
		out = append(out, dto.CategoryShareDTO{Name: name, Value: value, Color: color})
	}
	return out, nil
}

// RecentActivity toma las últimas 4 órdenes en orden de inserción y las
// proyecta más-reciente-primero. Un usuario borrado aparece como "Unknown".
func (uc *DashboardUseCase) RecentActivity() ([]dto.ActivityDTO, error) {
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	start := 0
	if len(orders) > recentActivityLimit {
		start = len(orders) - recentActivityLimit
	}
	recent := orders[start:]

	now := uc.now()
	out := make([]dto.ActivityDTO, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		o := recent[i]
		name := "Unknown"
		if user, err := uc.users.GetByID(o.UserID); err == nil {
			name = user.Name
		}
		out = append(out, dto.ActivityDTO{
			User:   name,
			Action: "Made a purchase",
			Time:   TimeAgo(o.Date, now),
			Amount: "$" + o.Amount.String(),
		})
	}
	return out, nil
}

// TimeAgo devuelve "Today", "Yesterday" o "N days ago" según la diferencia
// en días calendario completos entre date y now.
func TimeAgo(date, now time.Time) string {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	days := int(day(now).Sub(day(date)).Hours() / 24)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
