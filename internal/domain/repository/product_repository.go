package repository

import "github.com/tu-usuario/dashboard-pro/internal/domain/entity"

// ProductRepository define el puerto de acceso a la colección de productos (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
