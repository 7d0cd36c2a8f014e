package repository

import "github.com/tu-usuario/dashboard-pro/internal/domain/entity"

// UserRepository define el puerto de acceso a la colección de usuarios (DIP).
// List devuelve una copia defensiva en orden de inserción; mutar el slice
// devuelto nunca afecta el estado interno.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}
