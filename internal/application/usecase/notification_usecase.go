package usecase

import (
	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
)

// NotificationUseCase listado y estado de lectura de notificaciones.
// Las altas las emiten los otros casos de uso como efectos derivados.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List devuelve las notificaciones más recientes primero, con el conteo de
// no leídas.
func (uc *NotificationUseCase) List() (*dto.NotificationListResponse, error) {
	list, err := uc.notifications.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	unread := 0
	for i := range list {
		if !list[i].Read {
			unread++
		}
		items = append(items, toNotificationResponse(&list[i]))
	}
	return &dto.NotificationListResponse{Items: items, Unread: unread}, nil
}

// MarkRead marca una notificación como leída; no-op sobre un id inexistente.
func (uc *NotificationUseCase) MarkRead(id int64) error {
	return uc.notifications.MarkRead(id)
}

// MarkAllRead marca todas como leídas.
func (uc *NotificationUseCase) MarkAllRead() error {
	return uc.notifications.MarkAllRead()
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Time:      n.Time,
		Read:      n.Read,
		UserID:    n.UserID,
		OrderID:   n.OrderID,
		ProductID: n.ProductID,
	}
}
