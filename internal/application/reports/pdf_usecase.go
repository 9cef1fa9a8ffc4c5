// Package reports contiene el caso de uso de exportación del inventario a PDF.
package reports

import (
	"context"

	"github.com/shopspring/decimal"

	domaininv "github.com/geeky-dawood/snackstock-api/internal/domain/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// PDFUseCase genera el reporte PDF de valoración del inventario actual.
type PDFUseCase struct {
	productRepo repository.ProductRepository
	generator   InventoryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(productRepo repository.ProductRepository, generator InventoryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{productRepo: productRepo, generator: generator}
}

// GenerateInventoryReport calcula los acumulados sobre el catálogo actual y
// delega el maquetado en el generador.
func (uc *PDFUseCase) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	totals := InventoryTotals{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		TotalProfit:   decimal.Zero,
	}
	for _, p := range products {
		totals.TotalUnits += p.Stock
		totals.TotalValue = totals.TotalValue.Add(domaininv.StockValue(p))
		totals.TotalProfit = totals.TotalProfit.Add(domaininv.UnrealizedProfit(p))
		if p.IsLowStock() {
			totals.LowStockCount++
		}
	}
	return uc.generator.GenerateInventoryPDF(ctx, products, totals)
}
