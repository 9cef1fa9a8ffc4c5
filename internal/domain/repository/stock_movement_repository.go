package repository

import "github.com/geeky-dawood/snackstock-api/internal/domain/entity"

// StockMovementRepository acceso al log de movimientos de stock.
// El log se mantiene con el más reciente primero (Create antepone).
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	// GetByID devuelve (nil, nil) si el movimiento no existe.
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve el log completo, más reciente primero.
	List() ([]*entity.StockMovement, error)
	// Update reemplaza el movimiento con el mismo ID; domain.ErrNotFound si no existe.
	Update(m *entity.StockMovement) error
	// Delete elimina por ID; domain.ErrNotFound si no existe.
	Delete(id string) error
}
