package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
)

// SeedPassword es la contraseña de los usuarios de demostración.
const SeedPassword = "demo1234"

// NewSeededStore construye un Store con los datos de demostración del panel:
// 6 usuarios, 7 productos, 8 órdenes, 6 notificaciones y 5 mensajes.
// Los contadores de id quedan apuntando al siguiente id libre.
func NewSeededStore(opts ...Option) *Store {
	s := NewStore(opts...)
	s.seed()
	return s
}

func dateOnly(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *Store) seed() {
	// Un solo hash compartido: bcrypt es caro y todos los usuarios demo
	// comparten contraseña.
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("seed: bcrypt: " + err.Error())
	}
	passwordHash := string(hash)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []entity.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", PasswordHash: passwordHash, Role: entity.RoleAdmin, Status: entity.StatusActive, CreatedAt: dateOnly(2024, time.January, 15), TotalOrders: 12, TotalSpent: money("1450.50")},
		{ID: 2, Name: "Sarah Smith", Email: "sarah@example.com", PasswordHash: passwordHash, Role: entity.RoleUser, Status: entity.StatusActive, CreatedAt: dateOnly(2024, time.January, 14), TotalOrders: 8, TotalSpent: money("890.00")},
		{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", PasswordHash: passwordHash, Role: entity.RoleCustomer, Status: entity.StatusActive, CreatedAt: dateOnly(2024, time.January, 13), TotalOrders: 15, TotalSpent: money("2100.75")},
		{ID: 4, Name: "Emma Wilson", Email: "emma@example.com", PasswordHash: passwordHash, Role: entity.RoleUser, Status: entity.StatusActive, CreatedAt: dateOnly(2024, time.January, 12), TotalOrders: 5, TotalSpent: money("650.25")},
		{ID: 5, Name: "David Brown", Email: "david@example.com", PasswordHash: passwordHash, Role: entity.RoleCustomer, Status: entity.StatusActive, CreatedAt: dateOnly(2024, time.January, 11), TotalOrders: 20, TotalSpent: money("3200.00")},
		{ID: 6, Name: "Lisa Anderson", Email: "lisa@example.com", PasswordHash: passwordHash, Role: entity.RoleAdmin, Status: entity.StatusActive, CreatedAt: dateOnly(2024, time.January, 10), TotalOrders: 3, TotalSpent: money("420.50")},
	}

	s.products = []entity.Product{
		{ID: 1, Name: "Laptop Pro", Price: money("1299.99"), Category: entity.CategoryElectronics, Description: "High-performance laptop", Available: true, Stock: 45, Sold: 85},
		{ID: 2, Name: "Wireless Mouse", Price: money("29.99"), Category: entity.CategoryAccessories, Description: "Ergonomic wireless mouse", Available: true, Stock: 120, Sold: 210},
		{ID: 3, Name: "USB-C Cable", Price: money("12.99"), Category: entity.CategoryAccessories, Description: "Fast charging cable", Available: false, Stock: 0, Sold: 150},
		{ID: 4, Name: "Monitor 27\"", Price: money("349.99"), Category: entity.CategoryElectronics, Description: "4K display monitor", Available: true, Stock: 30, Sold: 65},
		{ID: 5, Name: "Keyboard Mechanical", Price: money("89.99"), Category: entity.CategoryAccessories, Description: "RGB mechanical keyboard", Available: true, Stock: 75, Sold: 125},
		{ID: 6, Name: "Webcam HD", Price: money("79.99"), Category: entity.CategoryElectronics, Description: "1080p webcam", Available: true, Stock: 50, Sold: 95},
		{ID: 7, Name: "Headphones", Price: money("149.99"), Category: entity.CategoryAccessories, Description: "Noise-cancelling headphones", Available: true, Stock: 60, Sold: 140},
	}

	s.orders = []entity.Order{
		{ID: 1, UserID: 1, ProductID: 1, Amount: money("1299.99"), Date: dateOnly(2024, time.January, 20), Status: entity.OrderStatusCompleted},
		{ID: 2, UserID: 2, ProductID: 2, Amount: money("29.99"), Date: dateOnly(2024, time.January, 20), Status: entity.OrderStatusCompleted},
		{ID: 3, UserID: 3, ProductID: 4, Amount: money("349.99"), Date: dateOnly(2024, time.January, 19), Status: entity.OrderStatusCompleted},
		{ID: 4, UserID: 1, ProductID: 5, Amount: money("89.99"), Date: dateOnly(2024, time.January, 19), Status: entity.OrderStatusPending},
		{ID: 5, UserID: 4, ProductID: 2, Amount: money("29.99"), Date: dateOnly(2024, time.January, 18), Status: entity.OrderStatusCompleted},
		{ID: 6, UserID: 5, ProductID: 1, Amount: money("1299.99"), Date: dateOnly(2024, time.January, 18), Status: entity.OrderStatusCompleted},
		{ID: 7, UserID: 2, ProductID: 7, Amount: money("149.99"), Date: dateOnly(2024, time.January, 17), Status: entity.OrderStatusCompleted},
		{ID: 8, UserID: 3, ProductID: 6, Amount: money("79.99"), Date: dateOnly(2024, time.January, 17), Status: entity.OrderStatusCompleted},
	}

	s.notifications = []entity.Notification{
		{ID: 1, Title: "New user registered", Message: "John Doe just created an account", Type: entity.NotificationInfo, Time: "5 min ago", Read: false, UserID: 1},
		{ID: 2, Title: "Payment received", Message: "Payment of $1299.99 received from Order #1", Type: entity.NotificationSuccess, Time: "15 min ago", Read: false, OrderID: 1},
		{ID: 3, Title: "Low stock alert", Message: "Product \"USB-C Cable\" is out of stock", Type: entity.NotificationWarning, Time: "1 hour ago", Read: false, ProductID: 3},
		{ID: 4, Title: "System update", Message: "System will be updated tonight at 2 AM", Type: entity.NotificationInfo, Time: "2 hours ago", Read: true},
		{ID: 5, Title: "New order placed", Message: "Order #3 has been placed by Mike Johnson", Type: entity.NotificationSuccess, Time: "3 hours ago", Read: true, OrderID: 3, UserID: 3},
		{ID: 6, Title: "Server maintenance", Message: "Scheduled maintenance completed successfully", Type: entity.NotificationSuccess, Time: "5 hours ago", Read: true},
	}

	s.messages = []entity.Message{
		{ID: 1, UserID: 2, Sender: "Sarah Smith", Avatar: "SS", Body: "Hey, I have a question about my order #2", Time: "10:30 AM", Unread: true, OrderID: 2},
		{ID: 2, UserID: 3, Sender: "Mike Johnson", Avatar: "MJ", Body: "Thanks for the quick response!", Time: "9:45 AM", Unread: true},
		{ID: 3, UserID: 4, Sender: "Emma Wilson", Avatar: "EW", Body: "Can you help me with the payment issue?", Time: "Yesterday", Unread: false},
		{ID: 4, UserID: 5, Sender: "David Brown", Avatar: "DB", Body: "Product received, everything looks great!", Time: "Yesterday", Unread: false},
		{ID: 5, UserID: 6, Sender: "Lisa Anderson", Avatar: "LA", Body: "When will my order be shipped?", Time: "2 days ago", Unread: false},
	}

	s.nextUserID = 7
	s.nextProductID = 8
	s.nextOrderID = 9
	s.nextNotificationID = 7
	s.nextMessageID = 6
}
