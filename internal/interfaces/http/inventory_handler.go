package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/geeky-dawood/snackstock-api/internal/application/dto"
	"github.com/geeky-dawood/snackstock-api/internal/application/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/domain"
)

// InventoryHandler maneja los ajustes de stock.
type InventoryHandler struct {
	uc      *inventory.AdjustStockUseCase
	metrics *Metrics
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustStockUseCase, metrics *Metrics) *InventoryHandler {
	return &InventoryHandler{uc: uc, metrics: metrics}
}

// AdjustStock godoc
// @Summary      Registrar un ajuste de stock (entrada o salida)
// @Description  Actualiza el stock del producto y antepone el movimiento al
//
//	historial en una sola operación atómica. Una salida que dejaría
//	el stock negativo se rechaza completa.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, type (in|out), quantity > 0, reason"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.Adjust(c.Context(), inventory.AdjustStockInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Reference: in.Reference,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser in|out, quantity > 0 y reason no vacío"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			h.metrics.StockUnderflows.Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "la salida dejaría el stock negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.metrics.MovementsRegistered.WithLabelValues(in.Type, in.Reason).Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ajuste registrado"})
}
