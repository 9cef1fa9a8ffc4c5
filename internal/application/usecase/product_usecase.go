package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/geeky-dawood/snackstock-api/internal/application/dto"
	"github.com/geeky-dawood/snackstock-api/internal/domain"
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock inicial se fija al
// crear; después solo se mueve vía ajustes de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con ID y fechas autoasignados. Valida los campos
// requeridos aquí, antes de tocar el store: el store acepta cualquier entrada
// bien tipada y no repite la validación.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.LessThan(decimal.Zero) || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		SKU:         in.SKU,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Price:       in.Price,
		Cost:        in.Cost,
		Description: in.Description,
		Supplier:    in.Supplier,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// List lista el catálogo en orden de creación, con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	total := len(products)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	items := make([]dto.ProductResponse, 0, end-offset)
	for _, p := range products[offset:end] {
		items = append(items, dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// LowStock devuelve los productos con stock <= stock mínimo, en orden de catálogo.
func (uc *ProductUseCase) LowStock() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0)
	for _, p := range products {
		if p.IsLowStock() {
			items = append(items, dto.ToProductResponse(p))
		}
	}
	return items, nil
}

// Update aplica una edición parcial y refresca UpdatedAt aunque ningún campo
// cambie de valor. Precio no positivo o costo negativo se rechazan; la
// convención costo < precio no se valida aquí, es solo sugerencia de UI.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// Delete elimina un producto por ID. Los movimientos que lo referencian se
// conservan como huérfanos; las consultas los valoran a cero.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
