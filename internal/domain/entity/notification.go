package entity

// Tipos válidos para Notification.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
)

// Notification es un aviso del panel. Time es un texto de presentación
// ("5 min ago", "Just now"), no un timestamp. UserID/OrderID/ProductID son
// referencias débiles opcionales (0 = sin referencia) que pueden quedar
// colgando si el referente se borra.
type Notification struct {
	ID        int64
	Title     string
	Message   string
	Type      string // info, success, warning
	Time      string
	Read      bool
	UserID    int64
	OrderID   int64
	ProductID int64
}
