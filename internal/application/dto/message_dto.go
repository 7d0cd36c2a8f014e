package dto

// CreateMessageRequest alta de mensaje de soporte. Sender y Avatar son
// opcionales: si faltan se derivan del usuario referenciado.
type CreateMessageRequest struct {
	UserID  int64  `json:"userId"`
	Sender  string `json:"sender"`
	Avatar  string `json:"avatar"`
	Body    string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// MessageResponse mensaje con el usuario remitente resuelto (nil si la
// referencia quedó colgando).
type MessageResponse struct {
	ID      int64         `json:"id"`
	UserID  int64         `json:"userId"`
	Sender  string        `json:"sender"`
	Avatar  string        `json:"avatar"`
	Body    string        `json:"message"`
	Time    string        `json:"time"`
	Unread  bool          `json:"unread"`
	OrderID int64         `json:"orderId,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

// MessageListResponse listado de mensajes con remitente resuelto.
type MessageListResponse struct {
	Items []MessageResponse `json:"items"`
	Total int               `json:"total"`
}
