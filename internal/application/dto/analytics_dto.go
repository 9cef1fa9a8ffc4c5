package dto

import "github.com/shopspring/decimal"

// AnalyticsSummaryDTO respuesta de GET /api/analytics/summary.
// Los KPIs de la vista de analítica: valoración, utilidad potencial, margen
// promedio y totales de ventas y mermas.
type AnalyticsSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalValue      decimal.Decimal `json:"total_value"`       // Σ stock * precio
	TotalProfit     decimal.Decimal `json:"total_profit"`      // Σ stock * (precio - costo), no realizada
	AverageMargin   decimal.Decimal `json:"average_margin"`    // % promedio simple sobre el catálogo
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`

	Sales   SalesTotalsDTO     `json:"sales"`
	Damages DamageTotalsDTO    `json:"damages"`
	Recent  []MovementResponse `json:"recent_movements"` // últimos 8
}

// SalesTotalsDTO acumulados de ventas (salidas con motivo Sale), valorados a
// precio y costo actuales del catálogo, no a los del momento de la venta.
type SalesTotalsDTO struct {
	Count    int             `json:"count"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"`  // Σ cantidad * precio actual
	Profit   decimal.Decimal `json:"profit"` // Σ cantidad * (precio - costo) actual
}

// DamageTotalsDTO acumulados de mermas (Damage, Loss, Return to Supplier),
// valorados al costo actual.
type DamageTotalsDTO struct {
	Count    int             `json:"count"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value"` // Σ cantidad * costo actual
}

// TopSellingProductDTO fila del ranking de más vendidos.
type TopSellingProductDTO struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	QuantitySold int             `json:"quantity_sold"` // unidades en salidas Sale
	SalesValue   decimal.Decimal `json:"sales_value"`   // cantidad * precio actual
	CurrentStock int             `json:"current_stock"`
}
