package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/infrastructure/memory"
)

func newDashboard(store *memory.Store) *DashboardUseCase {
	return NewDashboardUseCase(
		memory.NewUserRepository(store),
		memory.NewProductRepository(store),
		memory.NewOrderRepository(store),
	)
}

// Sin órdenes el promedio es cero: nunca se divide por cero.
func TestStats_SinOrdenes(t *testing.T) {
	uc := newDashboard(memory.NewStore())

	out, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalOrders)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.AvgOrderValue.IsZero())
}

func TestStats_Sembrado(t *testing.T) {
	uc := newDashboard(memory.NewSeededStore())

	out, err := uc.Stats()
	require.NoError(t, err)
	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("3329.92")), "revenue = suma de las 8 órdenes, got %s", out.TotalRevenue)
	assert.Equal(t, 8, out.TotalOrders)
	assert.Equal(t, 6, out.TotalUsers)
	assert.Equal(t, 6, out.ActiveUsers)
	assert.Equal(t, 1, out.PendingOrders)
	assert.True(t, out.AvgOrderValue.Equal(decimal.RequireFromString("416.24")), "avg = 3329.92 / 8, got %s", out.AvgOrderValue)
}

// Siempre 7 cubetas Mon..Sun, en cero cuando no hay órdenes.
func TestWeeklySales_SieteCubetasVacias(t *testing.T) {
	uc := newDashboard(memory.NewStore())

	out, err := uc.WeeklySales()
	require.NoError(t, err)
	require.Len(t, out, 7)
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, b := range out {
		assert.Equal(t, labels[i], b.Day)
		assert.Zero(t, b.Orders)
		assert.Zero(t, b.Revenue)
		assert.Zero(t, b.Customers)
	}
}

// El reparto es posicional (índice % 7), no por día real de la orden: la
// octava orden cae de vuelta en la cubeta Mon.
func TestWeeklySales_RepartoPosicional(t *testing.T) {
	uc := newDashboard(memory.NewSeededStore())

	out, err := uc.WeeklySales()
	require.NoError(t, err)
	require.Len(t, out, 7)

	mon := out[0]
	assert.Equal(t, 2, mon.Orders, "órdenes 1 y 8 caen en Mon")
	assert.Equal(t, int64(1380), mon.Revenue, "round(1299.99 + 79.99)")
	assert.Equal(t, 2, mon.Customers, "usuarios 1 y 3")

	tue := out[1]
	assert.Equal(t, 1, tue.Orders)
	assert.Equal(t, int64(30), tue.Revenue)
	assert.Equal(t, 1, tue.Customers)
}

func TestCategoryShares_Sembrado(t *testing.T) {
	uc := newDashboard(memory.NewSeededStore())

	out, err := uc.CategoryShares()
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Orden de primera aparición: Electronics (producto 1) antes que Accessories.
	assert.Equal(t, entity.CategoryElectronics, out[0].Name)
	assert.Equal(t, 28, out[0].Value, "245 de 870 vendidos")
	assert.Equal(t, "#0d6efd", out[0].Color)

	assert.Equal(t, entity.CategoryAccessories, out[1].Name)
	assert.Equal(t, 72, out[1].Value, "625 de 870 vendidos")
	assert.Equal(t, "#198754", out[1].Color)

	for _, share := range out {
		assert.GreaterOrEqual(t, share.Value, 0)
		assert.LessOrEqual(t, share.Value, 100)
	}
}

// Con total vendido cero cada categoría presente sale con valor 0; una
// categoría desconocida recibe el color de respaldo.
func TestCategoryShares_TotalCeroYColorRespaldo(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	require.NoError(t, products.Create(&entity.Product{Name: "A", Price: decimal.NewFromInt(1), Category: "Gadgets", Stock: 3}))
	require.NoError(t, products.Create(&entity.Product{Name: "B", Price: decimal.NewFromInt(1), Category: entity.CategorySoftware, Stock: 2}))

	uc := newDashboard(store)
	out, err := uc.CategoryShares()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Gadgets", out[0].Name)
	assert.Equal(t, 0, out[0].Value)
	assert.Equal(t, "#6c757d", out[0].Color, "categoría desconocida usa el color de respaldo")
	assert.Equal(t, 0, out[1].Value)
	assert.Equal(t, "#ffc107", out[1].Color)
}

// Escenario del feed: sin órdenes está vacío; tras 5 colocaciones devuelve
// las últimas 4 más-reciente-primero.
func TestRecentActivity_Escenario(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC) }
	store := memory.NewStore(memory.WithClock(clock))
	users := memory.NewUserRepository(store)
	products := memory.NewProductRepository(store)
	orders := memory.NewOrderRepository(store)

	require.NoError(t, users.Create(&entity.User{Name: "Ana", Email: "ana@example.com", Role: entity.RoleUser, Status: entity.StatusActive}))
	require.NoError(t, users.Create(&entity.User{Name: "Beto", Email: "beto@example.com", Role: entity.RoleUser, Status: entity.StatusActive}))
	require.NoError(t, products.Create(&entity.Product{Name: "P1", Price: decimal.NewFromInt(10), Category: entity.CategoryOthers, Stock: 50}))
	require.NoError(t, products.Create(&entity.Product{Name: "P2", Price: decimal.NewFromInt(20), Category: entity.CategoryOthers, Stock: 50}))

	uc := newDashboard(store)
	uc.now = clock

	out, err := uc.RecentActivity()
	require.NoError(t, err)
	assert.Empty(t, out)

	for i := 1; i <= 5; i++ {
		userID := int64(1)
		if i%2 == 0 {
			userID = 2
		}
		require.NoError(t, orders.Place(&entity.Order{
			UserID: userID, ProductID: 1,
			Amount: decimal.NewFromInt(int64(i * 10)),
			Status: entity.OrderStatusCompleted,
		}))
	}

	out, err = uc.RecentActivity()
	require.NoError(t, err)
	require.Len(t, out, 4, "solo las últimas 4 órdenes")

	assert.Equal(t, "$50", out[0].Amount, "la más reciente primero")
	assert.Equal(t, "$40", out[1].Amount)
	assert.Equal(t, "$30", out[2].Amount)
	assert.Equal(t, "$20", out[3].Amount)
	assert.Equal(t, "Ana", out[0].User)
	assert.Equal(t, "Beto", out[1].User)
	assert.Equal(t, "Made a purchase", out[0].Action)
	assert.Equal(t, "Today", out[0].Time)
}

// Un usuario borrado aparece como "Unknown" en el feed.
func TestRecentActivity_UsuarioDesconocido(t *testing.T) {
	store := memory.NewStore()
	orders := memory.NewOrderRepository(store)
	require.NoError(t, orders.Place(&entity.Order{UserID: 9, ProductID: 9, Amount: decimal.NewFromInt(5), Status: entity.OrderStatusPending}))

	uc := newDashboard(store)
	out, err := uc.RecentActivity()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Unknown", out[0].User)
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "Today", TimeAgo(time.Date(2024, time.June, 10, 23, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Yesterday", TimeAgo(time.Date(2024, time.June, 9, 1, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "3 days ago", TimeAgo(time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "30 days ago", TimeAgo(time.Date(2024, time.May, 11, 0, 0, 0, 0, time.UTC), now))
}
