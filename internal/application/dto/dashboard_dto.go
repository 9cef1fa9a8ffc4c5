package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las tarjetas del panel principal: tamaño del catálogo, valor del stock,
// ventas acumuladas y alertas de stock bajo, más la actividad reciente.
type DashboardSummaryDTO struct {
	TotalProducts      int             `json:"total_products"`
	TotalValue         decimal.Decimal `json:"total_value"`          // Σ stock * precio
	TotalSalesValue    decimal.Decimal `json:"total_sales_value"`    // ventas a precio actual
	TotalSalesQuantity int             `json:"total_sales_quantity"` // unidades vendidas
	LowStockCount      int             `json:"low_stock_count"`

	RecentMovements []MovementResponse `json:"recent_movements"` // últimos 5
	RecentSales     []MovementResponse `json:"recent_sales"`     // últimas 5 ventas
}
