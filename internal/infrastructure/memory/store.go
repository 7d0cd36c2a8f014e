// Package memory implementa los puertos de repositorio sobre colecciones en
// memoria, protegidas por un mutex. Las colecciones viven lo que vive el
// proceso: se siembran al construir el Store y nunca se persisten.
//
// Todas las lecturas devuelven copias defensivas; todas las escrituras toman
// el lock del Store, así que cada llamada de puerto es atómica aunque el
// Store sirva handlers HTTP concurrentes.
package memory

import (
	"sync"
	"time"

	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
)

// Store es el dueño exclusivo de las cinco colecciones del panel. Nadie más
// muta este estado: los repositorios de este paquete son vistas del Store.
//
// Los ids se asignan con contadores monótonos por colección, independientes
// del tamaño de la colección, así un borrado nunca provoca reutilización de id.
type Store struct {
	mu sync.Mutex

	users         []entity.User
	products      []entity.Product
	orders        []entity.Order
	notifications []entity.Notification
	messages      []entity.Message

	nextUserID         int64
	nextProductID      int64
	nextOrderID        int64
	nextNotificationID int64
	nextMessageID      int64

	now func() time.Time
}

// Option configura el Store en construcción.
type Option func(*Store)

// WithClock reemplaza el reloj del Store (para tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore construye un Store vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{
		nextUserID:         1,
		nextProductID:      1,
		nextOrderID:        1,
		nextNotificationID: 1,
		nextMessageID:      1,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today devuelve la fecha calendario actual (medianoche, sin hora).
func (s *Store) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Búsquedas internas por id. Escaneo lineal: las colecciones son de decenas
// a pocos cientos de registros. Los llamadores deben tener el lock tomado.

func (s *Store) findUser(id int64) *entity.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) findProduct(id int64) *entity.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

func (s *Store) findOrder(id int64) *entity.Order {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *Store) findMessage(id int64) *entity.Message {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return &s.messages[i]
		}
	}
	return nil
}
