package memory

import (
	"sort"

	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
)

// NotificationRepository implementa repository.NotificationRepository.
type NotificationRepository struct {
	s *Store
}

// NewNotificationRepository construye el repositorio.
func NewNotificationRepository(s *Store) *NotificationRepository {
	return &NotificationRepository{s: s}
}

// Create asigna id, marca la notificación como no leída con hora "Just now"
// y la agrega.
func (r *NotificationRepository) Create(notification *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	notification.ID = r.s.nextNotificationID
	r.s.nextNotificationID++
	if notification.Time == "" {
		notification.Time = "Just now"
	}
	notification.Read = false
	r.s.notifications = append(r.s.notifications, *notification)
	return nil
}

// List devuelve una copia con las más recientes primero (id descendente).
func (r *NotificationRepository) List() ([]entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Notification, len(r.s.notifications))
	copy(out, r.s.notifications)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// MarkRead marca como leída; no-op si el id no existe.
func (r *NotificationRepository) MarkRead(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id {
			r.s.notifications[i].Read = true
			return nil
		}
	}
	return nil
}

// MarkAllRead marca todas como leídas.
func (r *NotificationRepository) MarkAllRead() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		r.s.notifications[i].Read = true
	}
	return nil
}
