// Package inventory contiene servicios de dominio de valoración de inventario.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
)

// StockValue valor del stock en mano de un producto: Stock * Precio.
func StockValue(p *entity.Product) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// UnrealizedProfit utilidad no realizada del stock en mano: Stock * (Precio - Costo).
// Es margen potencial sobre lo que hay en bodega, no utilidad de ventas.
func UnrealizedProfit(p *entity.Product) decimal.Decimal {
	return p.Price.Sub(p.Cost).Mul(decimal.NewFromInt(int64(p.Stock)))
}

// MarginPercentage margen porcentual de un producto: (Precio - Costo) / Precio * 100.
// Precio cero devuelve cero para evitar división por cero.
func MarginPercentage(p *entity.Product) decimal.Decimal {
	if p.Price.IsZero() {
		return decimal.Zero
	}
	return p.Price.Sub(p.Cost).Div(p.Price).Mul(decimal.NewFromInt(100))
}
