package dto

// NotificationResponse representación de una notificación. Las referencias en
// cero se omiten del JSON (no hay referencia).
type NotificationResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Time      string `json:"time"`
	Read      bool   `json:"read"`
	UserID    int64  `json:"userId,omitempty"`
	OrderID   int64  `json:"orderId,omitempty"`
	ProductID int64  `json:"productId,omitempty"`
}

// NotificationListResponse listado más-reciente-primero.
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}
