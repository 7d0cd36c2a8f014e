package entity

import "github.com/shopspring/decimal"

// Categorías conocidas de producto. La lista no es cerrada: un producto puede
// declarar cualquier categoría; las conocidas tienen color fijo en analytics.
const (
	CategoryElectronics = "Electronics"
	CategoryAccessories = "Accessories"
	CategorySoftware    = "Software"
	CategoryServices    = "Services"
	CategoryOthers      = "Others"
)

// Product representa un producto del catálogo.
// Available debería reflejar Stock > 0 pero es independiente: el panel permite
// marcar un producto como no disponible aunque quede stock.
// Sold es monótono no decreciente; lo incrementa el camino de órdenes.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal // no negativo
	Category    string
	Description string
	Available   bool
	Stock       int // no negativo
	Sold        int
}
