package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/geeky-dawood/snackstock-api/internal/application/dto"
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	domaininv "github.com/geeky-dawood/snackstock-api/internal/domain/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

const analyticsRecentMovements = 8

// ReportsUseCase reportes de historial (ventas, mermas), resumen de analítica
// y ranking de más vendidos.
//
// Todos los valores monetarios usan el precio y costo ACTUALES del catálogo,
// no los del momento del movimiento: el movimiento no guarda un snapshot de
// precios, así que la utilidad histórica reportada no es exacta punto-en-tiempo.
type ReportsUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *ReportsUseCase {
	return &ReportsUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetAnalyticsSummary construye los KPIs de la vista de analítica.
func (uc *ReportsUseCase) GetAnalyticsSummary() (*dto.AnalyticsSummaryDTO, error) {
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
	totalProfit := decimal.Zero
	marginSum := decimal.Zero
	lowStock, outOfStock := 0, 0
	for _, p := range products {
		totalValue = totalValue.Add(domaininv.StockValue(p))
		totalProfit = totalProfit.Add(domaininv.UnrealizedProfit(p))
		marginSum = marginSum.Add(domaininv.MarginPercentage(p))
		if p.IsOutOfStock() {
			outOfStock++
		}
		if p.IsLowStock() {
			lowStock++
		}
	}
	averageMargin := decimal.Zero
	if len(products) > 0 {
		averageMargin = marginSum.Div(decimal.NewFromInt(int64(len(products)))).Round(1)
	}

	sales := dto.SalesTotalsDTO{Value: decimal.Zero, Profit: decimal.Zero}
	damages := dto.DamageTotalsDTO{Value: decimal.Zero}
	recent := make([]dto.MovementResponse, 0, analyticsRecentMovements)
	for _, m := range movements {
		if len(recent) < analyticsRecentMovements {
			recent = append(recent, dto.ToMovementResponse(m, byID[m.ProductID]))
		}
		accumulate(m, byID, &sales, &damages)
	}

	return &dto.AnalyticsSummaryDTO{
		TotalProducts:   len(products),
		TotalValue:      totalValue,
		TotalProfit:     totalProfit,
		AverageMargin:   averageMargin,
		LowStockCount:   lowStock,
		OutOfStockCount: outOfStock,
		Sales:           sales,
		Damages:         damages,
		Recent:          recent,
	}, nil
}

// SalesReport historial de ventas (salidas con motivo Sale), más reciente
// primero, con filtro opcional por rango de fechas (inclusive).
func (uc *ReportsUseCase) SalesReport(from, to *time.Time) (*dto.SalesReportDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	byID := dto.ProductIndex(products)

	report := &dto.SalesReportDTO{
		Items:  make([]dto.SalesReportRowDTO, 0),
		Totals: dto.SalesTotalsDTO{Value: decimal.Zero, Profit: decimal.Zero},
	}
	for _, m := range movements {
		if !m.IsSale() || !inRange(m.Date, from, to) {
			continue
		}
		qty := decimal.NewFromInt(int64(m.Quantity))
		row := dto.SalesReportRowDTO{
			MovementResponse: dto.ToMovementResponse(m, byID[m.ProductID]),
			UnitPrice:        decimal.Zero,
			Value:            decimal.Zero,
			Profit:           decimal.Zero,
		}
		if p, ok := byID[m.ProductID]; ok {
			row.UnitPrice = p.Price
			row.Value = p.Price.Mul(qty)
			row.Profit = p.Price.Sub(p.Cost).Mul(qty)
		}
		report.Items = append(report.Items, row)
		report.Totals.Count++
		report.Totals.Quantity += m.Quantity
		report.Totals.Value = report.Totals.Value.Add(row.Value)
		report.Totals.Profit = report.Totals.Profit.Add(row.Profit)
	}
	return report, nil
}

// DamagesReport historial de mermas (Damage, Loss, Return to Supplier),
// valoradas al costo actual, con filtro opcional por rango de fechas.
func (uc *ReportsUseCase) DamagesReport(from, to *time.Time) (*dto.DamagesReportDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	byID := dto.ProductIndex(products)

	report := &dto.DamagesReportDTO{
		Items:  make([]dto.DamageReportRowDTO, 0),
		Totals: dto.DamageTotalsDTO{Value: decimal.Zero},
	}
	for _, m := range movements {
		if !m.IsDamage() || !inRange(m.Date, from, to) {
			continue
		}
		row := dto.DamageReportRowDTO{
			MovementResponse: dto.ToMovementResponse(m, byID[m.ProductID]),
			UnitCost:         decimal.Zero,
			Value:            decimal.Zero,
		}
		if p, ok := byID[m.ProductID]; ok {
			row.UnitCost = p.Cost
			row.Value = p.Cost.Mul(decimal.NewFromInt(int64(m.Quantity)))
		}
		report.Items = append(report.Items, row)
		report.Totals.Count++
		report.Totals.Quantity += m.Quantity
		report.Totals.Value = report.Totals.Value.Add(row.Value)
	}
	return report, nil
}

// TopSelling ranking de productos por unidades vendidas acumuladas (salidas
// con motivo Sale), descendente, desempate estable por ID de producto.
// Productos sin ventas cuentan con cero y completan la cola del ranking.
func (uc *ReportsUseCase) TopSelling(limit int) ([]dto.TopSellingProductDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	soldByProduct := make(map[string]int, len(products))
	for _, m := range movements {
		if m.IsSale() {
			soldByProduct[m.ProductID] += m.Quantity
		}
	}

	ranking := make([]dto.TopSellingProductDTO, 0, len(products))
	for _, p := range products {
		sold := soldByProduct[p.ID]
		ranking = append(ranking, dto.TopSellingProductDTO{
			ProductID:    p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			Category:     p.Category,
			QuantitySold: sold,
			SalesValue:   p.Price.Mul(decimal.NewFromInt(int64(sold))),
			CurrentStock: p.Stock,
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].QuantitySold != ranking[j].QuantitySold {
			return ranking[i].QuantitySold > ranking[j].QuantitySold
		}
		return ranking[i].ProductID < ranking[j].ProductID
	})
	if limit > 0 && limit < len(ranking) {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

// accumulate suma el movimiento a sus acumulados según venta o merma.
func accumulate(
	m *entity.StockMovement,
	byID map[string]*entity.Product,
	sales *dto.SalesTotalsDTO,
	damages *dto.DamageTotalsDTO,
) {
	qty := decimal.NewFromInt(int64(m.Quantity))
	switch {
	case m.IsSale():
		sales.Count++
		sales.Quantity += m.Quantity
		if p, ok := byID[m.ProductID]; ok {
			sales.Value = sales.Value.Add(p.Price.Mul(qty))
			sales.Profit = sales.Profit.Add(p.Price.Sub(p.Cost).Mul(qty))
		}
	case m.IsDamage():
		damages.Count++
		damages.Quantity += m.Quantity
		if p, ok := byID[m.ProductID]; ok {
			damages.Value = damages.Value.Add(p.Cost.Mul(qty))
		}
	}
}

// inRange fecha dentro del rango [from, to], extremos opcionales.
func inRange(d time.Time, from, to *time.Time) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
