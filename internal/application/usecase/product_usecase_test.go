package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/application/usecase"
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/infrastructure/memory"
)

func newProductUC(store *memory.Store) (*usecase.ProductUseCase, *memory.NotificationRepository) {
	notifications := memory.NewNotificationRepository(store)
	return usecase.NewProductUseCase(memory.NewProductRepository(store), notifications), notifications
}

func TestProductCreate_SoldEnCero(t *testing.T) {
	store := memory.NewStore()
	uc, _ := newProductUC(store)

	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Docking Station", Price: decimal.RequireFromString("199.99"),
		Category: entity.CategoryAccessories, Available: true, Stock: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, 0, out.Sold)
	assert.Equal(t, 40, out.Stock)
}

func TestProductCreate_Validacion(t *testing.T) {
	store := memory.NewStore()
	uc, _ := newProductUC(store)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Bad", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(dto.CreateProductRequest{Name: "Bad", Price: decimal.NewFromInt(1), Stock: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo")

	_, err = uc.Create(dto.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")
}

// Una actualización que deja el stock por debajo del umbral emite la alerta
// "Low stock alert" referenciando al producto.
func TestProductUpdate_StockBajoEmiteAlerta(t *testing.T) {
	store := memory.NewSeededStore()
	uc, notifications := newProductUC(store)

	antes, err := notifications.List()
	require.NoError(t, err)

	stock := 5
	out, err := uc.Update(2, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Stock)

	despues, err := notifications.List()
	require.NoError(t, err)
	require.Len(t, despues, len(antes)+1)
	alerta := despues[0]
	assert.Equal(t, "Low stock alert", alerta.Title)
	assert.Equal(t, entity.NotificationWarning, alerta.Type)
	assert.Equal(t, int64(2), alerta.ProductID)
	assert.Contains(t, alerta.Message, "Wireless Mouse")
}

// Sin campo stock en el merge no hay alerta, aunque el stock ya esté bajo.
func TestProductUpdate_SinStockNoEmiteAlerta(t *testing.T) {
	store := memory.NewSeededStore()
	uc, notifications := newProductUC(store)

	antes, err := notifications.List()
	require.NoError(t, err)

	precio := decimal.RequireFromString("9.99")
	_, err = uc.Update(3, dto.UpdateProductRequest{Price: &precio}) // producto con stock 0
	require.NoError(t, err)

	despues, err := notifications.List()
	require.NoError(t, err)
	assert.Len(t, despues, len(antes))
}

// Available es independiente de Stock: bajar el stock a cero no lo apaga.
func TestProductUpdate_AvailableIndependiente(t *testing.T) {
	store := memory.NewSeededStore()
	uc, _ := newProductUC(store)

	stock := 0
	out, err := uc.Update(1, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
	assert.True(t, out.Available, "available no se recalcula")
}
