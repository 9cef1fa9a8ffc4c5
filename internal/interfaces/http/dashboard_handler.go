package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/geeky-dawood/snackstock-api/internal/application/analytics"
	"github.com/geeky-dawood/snackstock-api/internal/application/dto"
)

// DashboardHandler maneja el resumen del panel principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las tarjetas del dashboard y la actividad reciente.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, total_value,
// total_sales_value, total_sales_quantity, low_stock_count,
// recent_movements[5], recent_sales[5]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
