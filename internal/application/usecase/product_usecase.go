package usecase

import (
	"fmt"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
)

// lowStockThreshold stock por debajo del cual una actualización emite la
// alerta "Low stock alert".
const lowStockThreshold = 10

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	products      repository.ProductRepository
	notifications repository.NotificationRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, notifications repository.NotificationRepository) *ProductUseCase {
	return &ProductUseCase{products: products, notifications: notifications}
}

// Create crea un producto con Sold en cero. Precio y stock negativos se
// rechazan con domain.ErrInvalidInput.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		Available:   in.Available,
		Stock:       in.Stock,
		Sold:        0,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos en orden de inserción.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, *toProductResponse(&list[i]))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica un merge superficial. Si la actualización trae Stock y el
// valor resultante queda por debajo del umbral, emite "Low stock alert"
// referenciando al producto. Available no se recalcula: es independiente
// de Stock.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Available != nil {
		product.Available = *in.Available
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}

	if in.Stock != nil && *in.Stock < lowStockThreshold {
		_ = uc.notifications.Create(&entity.Notification{
			Title:     "Low stock alert",
			Message:   fmt.Sprintf("Product %q is running low on stock", product.Name),
			Type:      entity.NotificationWarning,
			ProductID: product.ID,
		})
	}
	return toProductResponse(product), nil
}

// Delete elimina por id, sin cascada.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.products.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		Available:   p.Available,
		Stock:       p.Stock,
		Sold:        p.Sold,
	}
}
