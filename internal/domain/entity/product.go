package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo (dulces, chocolates, snacks).
// Stock se modifica únicamente vía ajustes de inventario; el resto de campos
// se editan libremente desde el CRUD de productos.
type Product struct {
	ID          string
	Name        string
	Category    string          // etiqueta libre: Chocolates, Candies, Biscuits...
	SKU         string          // código libre, no único por catálogo
	Stock       int             // unidades en mano, nunca negativo
	MinStock    int             // umbral de alerta de stock bajo
	Price       decimal.Decimal // precio de venta unitario
	Cost        decimal.Decimal // costo unitario
	Description string
	Supplier    string
	ImageURL    string // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral mínimo.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// IsOutOfStock indica si el producto está agotado.
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}
