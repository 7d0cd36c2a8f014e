package memory

import (
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
)

// MessageRepository implementa repository.MessageRepository.
type MessageRepository struct {
	s *Store
}

// NewMessageRepository construye el repositorio.
func NewMessageRepository(s *Store) *MessageRepository {
	return &MessageRepository{s: s}
}

// Create asigna id con hora "Just now" y agrega el mensaje al final.
func (r *MessageRepository) Create(message *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	message.ID = r.s.nextMessageID
	r.s.nextMessageID++
	if message.Time == "" {
		message.Time = "Just now"
	}
	r.s.messages = append(r.s.messages, *message)
	return nil
}

// GetByID devuelve una copia del mensaje o domain.ErrNotFound.
func (r *MessageRepository) GetByID(id int64) (*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m := r.s.findMessage(id)
	if m == nil {
		return nil, domain.ErrNotFound
	}
	copia := *m
	return &copia, nil
}

// List devuelve una copia defensiva en orden de inserción.
func (r *MessageRepository) List() ([]entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Message, len(r.s.messages))
	copy(out, r.s.messages)
	return out, nil
}

// MarkRead pone Unread en false; no-op si el id no existe.
func (r *MessageRepository) MarkRead(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m := r.s.findMessage(id); m != nil {
		m.Unread = false
	}
	return nil
}
