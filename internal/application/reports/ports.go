package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
)

// InventoryTotals acumulados del reporte de valoración de inventario.
type InventoryTotals struct {
	TotalProducts int
	TotalUnits    int
	TotalValue    decimal.Decimal // Σ stock * precio
	TotalProfit   decimal.Decimal // Σ stock * (precio - costo)
	LowStockCount int
}

// InventoryPDFGenerator genera la representación PDF del reporte de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, products []*entity.Product, totals InventoryTotals) ([]byte, error)
}
