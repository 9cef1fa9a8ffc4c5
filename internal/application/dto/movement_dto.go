package dto

import (
	"time"

	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
)

// AdjustStockRequest body para POST /api/inventory/adjustments.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // in | out
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Reference string `json:"reference,omitempty"`
}

// UpdateMovementRequest edición parcial de un movimiento histórico.
// No compensa el stock del producto.
type UpdateMovementRequest struct {
	Quantity  *int    `json:"quantity"`
	Date      *string `json:"date"` // YYYY-MM-DD
	Reason    *string `json:"reason"`
	Reference *string `json:"reference"`
}

// MovementResponse salida de un movimiento, con el producto resuelto contra
// el catálogo actual (campos vacíos si el producto fue borrado).
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name,omitempty"`
	ProductSKU      string    `json:"product_sku,omitempty"`
	ProductCategory string    `json:"product_category,omitempty"`
	Type            string    `json:"type"`
	Quantity        int       `json:"quantity"`
	Date            time.Time `json:"date"`
	Reason          string    `json:"reason"`
	Reference       string    `json:"reference,omitempty"`
}

// ToMovementResponse mapea el movimiento y su producto (puede ser nil).
func ToMovementResponse(m *entity.StockMovement, p *entity.Product) MovementResponse {
	out := MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Date:      m.Date,
		Reason:    m.Reason,
		Reference: m.Reference,
	}
	if p != nil {
		out.ProductName = p.Name
		out.ProductSKU = p.SKU
		out.ProductCategory = p.Category
	}
	return out
}
