package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// Stock aquí es el stock inicial; después solo cambia vía ajustes.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier"`
	ImageURL    string          `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: el
// stock se mueve únicamente vía ajustes de inventario).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	SKU         *string          `json:"sku"`
	MinStock    *int             `json:"min_stock"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Description *string          `json:"description"`
	Supplier    *string          `json:"supplier"`
	ImageURL    *string          `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier"`
	ImageURL    string          `json:"image_url,omitempty"`
	StockStatus string          `json:"stock_status"` // out_of_stock | low_stock | in_stock
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ToProductResponse mapea la entidad a su DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	status := "in_stock"
	switch {
	case p.IsOutOfStock():
		status = "out_of_stock"
	case p.IsLowStock():
		status = "low_stock"
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		SKU:         p.SKU,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Price:       p.Price,
		Cost:        p.Cost,
		Description: p.Description,
		Supplier:    p.Supplier,
		ImageURL:    p.ImageURL,
		StockStatus: status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductIndex indexa productos por ID para joins en memoria.
func ProductIndex(products []*entity.Product) map[string]*entity.Product {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
