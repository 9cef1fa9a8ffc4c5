package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Motivos conocidos de movimiento. El campo Reason es texto libre; estos son
// los valores que usan los formularios y por los que filtran los reportes.
const (
	ReasonPurchase         = "Purchase"
	ReasonRestock          = "Restock"
	ReasonReturn           = "Return"
	ReasonSale             = "Sale"
	ReasonDamage           = "Damage"
	ReasonLoss             = "Loss"
	ReasonReturnToSupplier = "Return to Supplier"
)

// DamageReasons motivos de salida que cuentan como merma (valorados al costo).
var DamageReasons = []string{ReasonDamage, ReasonLoss, ReasonReturnToSupplier}

// StockMovement es el registro de auditoría de un cambio de cantidad.
// Referencia al producto por ID sin integridad referencial: borrar un producto
// no borra sus movimientos, así que las consultas deben tolerar referencias
// huérfanas (producto ausente vale cero en los agregados).
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // in | out
	Quantity  int    // siempre > 0; el signo lo da Type
	Date      time.Time
	Reason    string
	Reference string // opcional: orden, PO, ticket de merma
	CreatedAt time.Time
}

// IsSale indica si el movimiento es una venta (salida con motivo Sale).
func (m *StockMovement) IsSale() bool {
	return m.Type == MovementTypeOut && m.Reason == ReasonSale
}

// IsDamage indica si el movimiento es una merma (salida con motivo de daño,
// pérdida o devolución a proveedor).
func (m *StockMovement) IsDamage() bool {
	if m.Type != MovementTypeOut {
		return false
	}
	for _, r := range DamageReasons {
		if m.Reason == r {
			return true
		}
	}
	return false
}
