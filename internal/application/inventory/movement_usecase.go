package inventory

import (
	"time"

	"github.com/geeky-dawood/snackstock-api/internal/application/dto"
	"github.com/geeky-dawood/snackstock-api/internal/domain"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// MovementUseCase consulta y edita el historial de movimientos.
//
// Editar o borrar un movimiento NO compensa el stock del producto: son
// correcciones del registro histórico, desacopladas del total vivo. Así se
// comporta el sistema desde su origen; recalcular el stock en la edición
// cambiaría totales que los usuarios ya dan por buenos.
type MovementUseCase struct {
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *MovementUseCase {
	return &MovementUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// List devuelve el historial (más reciente primero), opcionalmente filtrado
// por tipo y/o motivo. Cada fila resuelve el nombre/SKU del producto contra el
// catálogo actual; un producto borrado deja esos campos vacíos.
func (uc *MovementUseCase) List(movementType, reason string) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	byID := dto.ProductIndex(products)

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		if movementType != "" && m.Type != movementType {
			continue
		}
		if reason != "" && m.Reason != reason {
			continue
		}
		items = append(items, dto.ToMovementResponse(m, byID[m.ProductID]))
	}
	return items, nil
}

// Update aplica una edición parcial al movimiento. Cantidad no positiva o
// fecha mal formada devuelven domain.ErrInvalidInput; ID desconocido,
// domain.ErrNotFound.
func (uc *MovementUseCase) Update(id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		movement.Quantity = *in.Quantity
	}
	if in.Date != nil {
		d, err := time.Parse("2006-01-02", *in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		movement.Date = d
	}
	if in.Reason != nil {
		movement.Reason = *in.Reason
	}
	if in.Reference != nil {
		movement.Reference = *in.Reference
	}
	if err := uc.movementRepo.Update(movement); err != nil {
		return nil, err
	}
	product, _ := uc.productRepo.GetByID(movement.ProductID)
	out := dto.ToMovementResponse(movement, product)
	return &out, nil
}

// Delete elimina el movimiento del historial. Sin compensación de stock.
func (uc *MovementUseCase) Delete(id string) error {
	return uc.movementRepo.Delete(id)
}
