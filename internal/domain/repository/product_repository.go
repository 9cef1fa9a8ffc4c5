package repository

import "github.com/geeky-dawood/snackstock-api/internal/domain/entity"

// ProductRepository acceso al catálogo de productos.
// List y GetByID devuelven copias (snapshots): mutar lo devuelto no afecta
// el estado del store; todo cambio pasa por Create/Update/Delete.
type ProductRepository interface {
	Create(p *entity.Product) error
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(id string) (*entity.Product, error)
	// List devuelve el catálogo completo en orden de creación.
	List() ([]*entity.Product, error)
	// Update reemplaza el producto con el mismo ID; domain.ErrNotFound si no existe.
	Update(p *entity.Product) error
	// Delete elimina por ID; domain.ErrNotFound si no existe.
	// No toca el log de movimientos (las referencias quedan huérfanas).
	Delete(id string) error
}
