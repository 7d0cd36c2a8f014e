package usecase

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. El alta emite una notificación
// derivada "New user registered".
type UserUseCase struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, notifications repository.NotificationRepository) *UserUseCase {
	return &UserUseCase{users: users, notifications: notifications}
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleUser || role == entity.RoleCustomer
}

func validUserStatus(status string) bool {
	return status == entity.StatusActive || status == entity.StatusInactive
}

// Create crea un usuario con contadores derivados en cero y emite la
// notificación de registro.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == "" {
		in.Role = entity.RoleUser
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	if !validRole(in.Role) || !validUserStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.users.GetByEmail(in.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	user := &entity.User{
		Name:   in.Name,
		Email:  in.Email,
		Role:   in.Role,
		Status: in.Status,
		// TotalOrders y TotalSpent inician en cero (decimal.Decimal zero value)
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	_ = uc.notifications.Create(&entity.Notification{
		Title:   "New user registered",
		Message: fmt.Sprintf("%s just created an account", user.Name),
		Type:    entity.NotificationInfo,
		UserID:  user.ID,
	})

	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por id.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista los usuarios en orden de inserción.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for i := range list {
		items = append(items, *toUserResponse(&list[i]))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica un merge superficial: los campos presentes sobreescriben,
// los omitidos conservan su valor.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		if other, err := uc.users.GetByEmail(*in.Email); err == nil && other.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		if !validUserStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina por id. Las órdenes, notificaciones y mensajes que lo
// referencian conservan su referencia colgante.
func (uc *UserUseCase) Delete(id int64) error {
	return uc.users.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt.Format(dto.DateLayout),
		TotalOrders: u.TotalOrders,
		TotalSpent:  u.TotalSpent,
	}
}
