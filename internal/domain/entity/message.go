package entity

// Message es un mensaje de soporte enviado por un usuario. Igual que en
// Notification, Time es texto de presentación y UserID/OrderID son
// referencias débiles.
type Message struct {
	ID      int64
	UserID  int64
	Sender  string
	Avatar  string // iniciales, ej. "SS"
	Body    string
	Time    string
	Unread  bool
	OrderID int64 // 0 = sin orden asociada
}
