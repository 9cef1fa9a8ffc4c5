// Package analytics contiene los casos de uso de consultas derivadas: el
// resumen del dashboard, los KPIs de analítica y los reportes de historial.
// Todas son lecturas puras O(n) sobre el catálogo y el log; con catálogos de
// pocos miles de filas no hace falta caché.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/geeky-dawood/snackstock-api/internal/application/dto"
	domaininv "github.com/geeky-dawood/snackstock-api/internal/domain/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

const (
	dashboardRecentMovements = 5
	dashboardRecentSales     = 5
)

// DashboardUseCase genera el resumen del panel principal.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetSummary construye el DashboardSummaryDTO a partir del estado actual.
// Las ventas se valoran a precio actual del catálogo; productos borrados
// contribuyen cero (referencia huérfana tolerada).
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	byID := dto.ProductIndex(products)

	totalValue := decimal.Zero
	lowStock := 0
	for _, p := range products {
		totalValue = totalValue.Add(domaininv.StockValue(p))
		if p.IsLowStock() {
			lowStock++
		}
	}

	salesValue := decimal.Zero
	salesQty := 0
	recent := make([]dto.MovementResponse, 0, dashboardRecentMovements)
	recentSales := make([]dto.MovementResponse, 0, dashboardRecentSales)
	for _, m := range movements {
		if len(recent) < dashboardRecentMovements {
			recent = append(recent, dto.ToMovementResponse(m, byID[m.ProductID]))
		}
		if !m.IsSale() {
			continue
		}
		salesQty += m.Quantity
		if p, ok := byID[m.ProductID]; ok {
			salesValue = salesValue.Add(p.Price.Mul(decimal.NewFromInt(int64(m.Quantity))))
		}
		if len(recentSales) < dashboardRecentSales {
			recentSales = append(recentSales, dto.ToMovementResponse(m, byID[m.ProductID]))
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:      len(products),
		TotalValue:         totalValue,
		TotalSalesValue:    salesValue,
		TotalSalesQuantity: salesQty,
		LowStockCount:      lowStock,
		RecentMovements:    recent,
		RecentSales:        recentSales,
	}, nil
}
