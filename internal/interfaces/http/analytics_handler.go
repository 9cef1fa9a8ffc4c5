package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/geeky-dawood/snackstock-api/internal/application/analytics"
	"github.com/geeky-dawood/snackstock-api/internal/application/dto"
)

// AnalyticsHandler maneja los KPIs de analítica y los reportes de historial.
type AnalyticsHandler struct {
	uc *analytics.ReportsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.ReportsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de analítica (valoración, márgenes, ventas, mermas)
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsSummaryDTO
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetAnalyticsSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Historial de ventas con totales (valorado a precio actual)
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD, inclusive)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Success      200   {object}  dto.SalesReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *AnalyticsHandler) SalesReport(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben tener formato YYYY-MM-DD"})
	}
	out, err := h.uc.SalesReport(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DamagesReport godoc
// @Summary      Historial de mermas con totales (valorado al costo actual)
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD, inclusive)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Success      200   {object}  dto.DamagesReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/damages [get]
func (h *AnalyticsHandler) DamagesReport(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben tener formato YYYY-MM-DD"})
	}
	out, err := h.uc.DamagesReport(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopSelling godoc
// @Summary      Ranking de más vendidos por unidades acumuladas
// @Tags         reports
// @Produce      json
// @Param        limit  query  int  false  "Tamaño del ranking"  default(3)
// @Success      200    {array}  dto.TopSellingProductDTO
// @Router       /api/reports/top-selling [get]
func (h *AnalyticsHandler) TopSelling(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 3)
	if limit <= 0 {
		limit = 3
	}
	out, err := h.uc.TopSelling(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseDateRange lee from/to de la query; el extremo "to" cubre el día completo.
func parseDateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("from"); s != "" {
		d, perr := time.Parse("2006-01-02", s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &d
	}
	if s := c.Query("to"); s != "" {
		d, perr := time.Parse("2006-01-02", s)
		if perr != nil {
			return nil, nil, perr
		}
		end := d.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	return from, to, nil
}
