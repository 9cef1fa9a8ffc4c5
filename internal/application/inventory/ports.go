package inventory

import (
	"context"

	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// TxRunner ejecuta un callback de forma atómica sobre ambas colecciones del
// store: ninguna otra operación puede observar o mutar el estado mientras fn
// corre. Es la única vía para mantener consistentes el stock del producto y
// el log de movimientos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
