package repository

import "github.com/tu-usuario/dashboard-pro/internal/domain/entity"

// MessageRepository define el puerto de acceso a los mensajes de soporte.
type MessageRepository interface {
	Create(message *entity.Message) error
	GetByID(id int64) (*entity.Message, error)
	List() ([]entity.Message, error)
	MarkRead(id int64) error
}
