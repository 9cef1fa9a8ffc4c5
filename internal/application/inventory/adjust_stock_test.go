package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geeky-dawood/snackstock-api/internal/application/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/domain"
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	"github.com/geeky-dawood/snackstock-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// seedProduct crea un producto directo en el store y devuelve su ID.
func seedProduct(t *testing.T, store *memory.Store, stock, minStock int, price, cost int64) string {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      "Cadbury Dairy Milk",
		Category:  "Chocolates",
		SKU:       "CDM-001",
		Stock:     stock,
		MinStock:  minStock,
		Price:     decimal.NewFromInt(price),
		Cost:      decimal.NewFromInt(cost),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Products().Create(p))
	return p.ID
}

func adjust(t *testing.T, uc *inventory.AdjustStockUseCase, productID, typ string, qty int, reason string) error {
	t.Helper()
	return uc.Adjust(context.Background(), inventory.AdjustStockInput{
		ProductID: productID,
		Type:      typ,
		Quantity:  qty,
		Reason:    reason,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos felices
// ──────────────────────────────────────────────────────────────────────────────

// Una salida válida actualiza el stock y antepone exactamente un movimiento.
func TestAdjust_SalidaActualizaStockYRegistraMovimiento(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)
	id := seedProduct(t, store, 10, 5, 100, 60)

	require.NoError(t, adjust(t, uc, id, entity.MovementTypeOut, 3, entity.ReasonSale))

	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)

	movements, err := store.Movements().List()
	require.NoError(t, err)
	require.Len(t, movements, 1)
	m := movements[0]
	assert.Equal(t, id, m.ProductID)
	assert.Equal(t, entity.MovementTypeOut, m.Type)
	assert.Equal(t, 3, m.Quantity)
	assert.Equal(t, entity.ReasonSale, m.Reason)
	assert.NotEmpty(t, m.ID)
}

// Entrada seguida de salida por la misma cantidad: el stock vuelve al inicial
// y existen exactamente dos movimientos.
func TestAdjust_EntradaYSalidaHacenRoundTrip(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)
	id := seedProduct(t, store, 50, 10, 30, 18)

	require.NoError(t, adjust(t, uc, id, entity.MovementTypeIn, 25, entity.ReasonRestock))
	require.NoError(t, adjust(t, uc, id, entity.MovementTypeOut, 25, entity.ReasonSale))

	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stock, "entrada y salida por la misma cantidad deben anularse")

	movements, err := store.Movements().List()
	require.NoError(t, err)
	assert.Len(t, movements, 2)
}

// El ajuste refresca la fecha de última modificación del producto.
func TestAdjust_RefrescaUpdatedAt(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)
	id := seedProduct(t, store, 10, 5, 100, 60)

	before, err := store.Products().GetByID(id)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, adjust(t, uc, id, entity.MovementTypeIn, 1, entity.ReasonPurchase))

	after, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "el ajuste debe refrescar UpdatedAt")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazos
// ──────────────────────────────────────────────────────────────────────────────

// Una salida mayor al stock se rechaza completa: ni el producto ni el log cambian.
func TestAdjust_SubdesbordamientoNoMutaNada(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)
	id := seedProduct(t, store, 1, 0, 100, 60)

	err := adjust(t, uc, id, entity.MovementTypeOut, 100, entity.ReasonSale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, gerr := store.Products().GetByID(id)
	require.NoError(t, gerr)
	assert.Equal(t, 1, p.Stock, "el stock no debe cambiar en un rechazo")

	movements, lerr := store.Movements().List()
	require.NoError(t, lerr)
	assert.Empty(t, movements, "no debe registrarse ningún movimiento en un rechazo")
}

// Sacar exactamente el stock disponible deja cero y sí se acepta.
func TestAdjust_SalidaExactaDejaCero(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)
	id := seedProduct(t, store, 5, 2, 40, 22)

	require.NoError(t, adjust(t, uc, id, entity.MovementTypeOut, 5, entity.ReasonSale))

	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}

func TestAdjust_ProductoInexistenteDevuelveNotFound(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)

	err := adjust(t, uc, "no-existe", entity.MovementTypeOut, 1, entity.ReasonSale)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	movements, lerr := store.Movements().List()
	require.NoError(t, lerr)
	assert.Empty(t, movements)
}

func TestAdjust_EntradaInvalidaDevuelveInvalidInput(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)
	id := seedProduct(t, store, 10, 5, 100, 60)

	cases := []struct {
		name  string
		input inventory.AdjustStockInput
	}{
		{"tipo desconocido", inventory.AdjustStockInput{ProductID: id, Type: "transfer", Quantity: 1, Reason: entity.ReasonSale}},
		{"cantidad cero", inventory.AdjustStockInput{ProductID: id, Type: entity.MovementTypeIn, Quantity: 0, Reason: entity.ReasonPurchase}},
		{"cantidad negativa", inventory.AdjustStockInput{ProductID: id, Type: entity.MovementTypeOut, Quantity: -3, Reason: entity.ReasonSale}},
		{"motivo vacío", inventory.AdjustStockInput{ProductID: id, Type: entity.MovementTypeOut, Quantity: 1, Reason: ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.Adjust(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo del flujo de ventas
// ──────────────────────────────────────────────────────────────────────────────

// Producto con stock 10 y mínimo 5: una venta de 3 lo deja en 7 (fuera de
// alerta); tres ventas más de 2 lo dejan en 1 (dentro de alerta).
func TestAdjust_EscenarioVentasHastaStockBajo(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store)
	id := seedProduct(t, store, 10, 5, 100, 60)

	require.NoError(t, adjust(t, uc, id, entity.MovementTypeOut, 3, entity.ReasonSale))

	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)
	assert.False(t, p.IsLowStock(), "con stock 7 y mínimo 5 no hay alerta")

	for i := 0; i < 3; i++ {
		require.NoError(t, adjust(t, uc, id, entity.MovementTypeOut, 2, entity.ReasonSale))
	}

	p, err = store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Stock)
	assert.True(t, p.IsLowStock(), "con stock 1 y mínimo 5 debe haber alerta")

	movements, err := store.Movements().List()
	require.NoError(t, err)
	assert.Len(t, movements, 4)
}
