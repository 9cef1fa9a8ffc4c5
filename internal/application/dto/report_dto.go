package dto

import "github.com/shopspring/decimal"

// SalesReportDTO respuesta de GET /api/reports/sales.
type SalesReportDTO struct {
	Items  []SalesReportRowDTO `json:"items"`
	Totals SalesTotalsDTO      `json:"totals"`
}

// SalesReportRowDTO una venta del historial, valorada a precio actual.
type SalesReportRowDTO struct {
	MovementResponse
	UnitPrice decimal.Decimal `json:"unit_price"`
	Value     decimal.Decimal `json:"value"`  // cantidad * precio actual
	Profit    decimal.Decimal `json:"profit"` // cantidad * (precio - costo) actual
}

// DamagesReportDTO respuesta de GET /api/reports/damages.
type DamagesReportDTO struct {
	Items  []DamageReportRowDTO `json:"items"`
	Totals DamageTotalsDTO      `json:"totals"`
}

// DamageReportRowDTO una merma del historial, valorada al costo actual.
type DamageReportRowDTO struct {
	MovementResponse
	UnitCost decimal.Decimal `json:"unit_cost"`
	Value    decimal.Decimal `json:"value"` // cantidad * costo actual
}
