package repository

import "github.com/tu-usuario/dashboard-pro/internal/domain/entity"

// NotificationRepository define el puerto de acceso a las notificaciones.
// List devuelve las notificaciones más recientes primero (id descendente).
// MarkRead y MarkAllRead son no-op (no error) sobre ids inexistentes.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	List() ([]entity.Notification, error)
	MarkRead(id int64) error
	MarkAllRead() error
}
