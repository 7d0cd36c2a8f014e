package usecase

import (
	"strings"
	"unicode"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
)

// MessageUseCase mensajes de soporte: alta, listado con remitente resuelto y
// estado de lectura.
type MessageUseCase struct {
	messages repository.MessageRepository
	users    repository.UserRepository
}

// NewMessageUseCase construye el caso de uso.
func NewMessageUseCase(messages repository.MessageRepository, users repository.UserRepository) *MessageUseCase {
	return &MessageUseCase{messages: messages, users: users}
}

// Create registra un mensaje. Si Sender o Avatar faltan se derivan del
// usuario referenciado; si el usuario tampoco existe, el mensaje se registra
// con los campos tal como llegaron.
func (uc *MessageUseCase) Create(in dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	message := &entity.Message{
		UserID:  in.UserID,
		Sender:  in.Sender,
		Avatar:  in.Avatar,
		Body:    in.Body,
		Unread:  true,
		OrderID: in.OrderID,
	}
	if message.Sender == "" || message.Avatar == "" {
		if user, err := uc.users.GetByID(in.UserID); err == nil {
			if message.Sender == "" {
				message.Sender = user.Name
			}
			if message.Avatar == "" {
				message.Avatar = initials(user.Name)
			}
		}
	}
	if err := uc.messages.Create(message); err != nil {
		return nil, err
	}
	return uc.toMessageResponse(message), nil
}

// List lista los mensajes con el usuario remitente resuelto por llamada.
func (uc *MessageUseCase) List() (*dto.MessageListResponse, error) {
	list, err := uc.messages.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MessageResponse, 0, len(list))
	for i := range list {
		items = append(items, *uc.toMessageResponse(&list[i]))
	}
	return &dto.MessageListResponse{Items: items, Total: len(items)}, nil
}

// MarkRead pone el mensaje como leído; no-op sobre un id inexistente.
func (uc *MessageUseCase) MarkRead(id int64) error {
	return uc.messages.MarkRead(id)
}

func (uc *MessageUseCase) toMessageResponse(m *entity.Message) *dto.MessageResponse {
	out := &dto.MessageResponse{
		ID:      m.ID,
		UserID:  m.UserID,
		Sender:  m.Sender,
		Avatar:  m.Avatar,
		Body:    m.Body,
		Time:    m.Time,
		Unread:  m.Unread,
		OrderID: m.OrderID,
	}
	if user, err := uc.users.GetByID(m.UserID); err == nil {
		out.User = toUserResponse(user)
	}
	return out
}

// initials devuelve las iniciales del nombre, ej. "Sarah Smith" -> "SS".
func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	return b.String()
}
