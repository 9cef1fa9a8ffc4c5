package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/geeky-dawood/snackstock-api/internal/domain"
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// AdjustStockUseCase registra ajustes de stock (entradas y salidas).
// Es el único camino que muta el stock de un producto y el log de movimientos
// a la vez: valida el subdesbordamiento y, si pasa, actualiza el producto y
// antepone el movimiento dentro de la misma sección atómica.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustStockInput entrada para un ajuste de stock.
type AdjustStockInput struct {
	ProductID string
	Type      string // in | out
	Quantity  int    // > 0
	Reason    string // Purchase, Restock, Return / Sale, Damage, Loss, Return to Supplier
	Reference string // opcional
}

// Adjust aplica el ajuste. Errores:
//   - domain.ErrInvalidInput: tipo desconocido, cantidad <= 0 o motivo vacío
//   - domain.ErrNotFound: el producto no existe
//   - domain.ErrInsufficientStock: una salida dejaría el stock negativo;
//     no se muta nada (se rechaza, no se recorta a cero)
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustStockInput) error {
	if input.Type != entity.MovementTypeIn && input.Type != entity.MovementTypeOut {
		return domain.ErrInvalidInput
	}
	if input.Quantity <= 0 || input.Reason == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByID(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.Stock + input.Quantity
		if input.Type == entity.MovementTypeOut {
			newStock = product.Stock - input.Quantity
		}
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}

		product.Stock = newStock
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}

		return movementRepo.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Date:      now,
			Reason:    input.Reason,
			Reference: input.Reference,
			CreatedAt: now,
		})
	})
}
