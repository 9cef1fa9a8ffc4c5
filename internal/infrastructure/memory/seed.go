package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
)

// seedProduct datos mínimos para una fila del catálogo de demostración.
type seedProduct struct {
	name, category, sku   string
	stock, minStock       int
	price, cost           int64
	description, supplier string
}

var demoCatalog = []seedProduct{
	{"Cadbury Dairy Milk (38g)", "Chocolates", "CDM-001", 100, 20, 180, 120, "Smooth and creamy milk chocolate bar", "Cadbury Pakistan"},
	{"KitKat (4 Finger)", "Chocolates", "KTK-002", 85, 15, 160, 110, "Crispy wafer fingers covered with milk chocolate", "Nestlé Pakistan"},
	{"CandyLand Chillz", "Candies", "CLC-003", 200, 40, 5, 2, "Cool mint-flavored candy", "Ismail Industries"},
	{"ABC Goli Candy", "Candies", "ABC-004", 300, 50, 2, 1, "Classic colorful goli candy", "Local Distributor"},
	{"Chupa Chups Strawberry", "Lollipops", "CC-005", 150, 25, 30, 18, "Strawberry flavored lollipop", "Chupa Chups Pakistan"},
	{"CandyLand Jellies (Fruit Mix)", "Gummies & Jelly", "CLJ-006", 180, 30, 50, 30, "Assorted fruit-flavored jelly candies", "Ismail Industries"},
	{"Lays Masala", "Chips", "LAYS-007", 120, 20, 50, 30, "Masala-flavored potato chips", "PepsiCo Pakistan"},
	{"Slanty Cheese Flavor", "Crisps (Slanty, Kurleez)", "SLT-008", 95, 18, 40, 22, "Cheese flavored corn crisps", "Ismail Industries"},
	{"Peek Freans Sooper (Half Roll)", "Biscuits", "PF-009", 210, 35, 120, 75, "Egg and milk biscuits", "EBM Pakistan"},
	{"Mix Nimko (200g)", "Nimko", "NMK-010", 80, 15, 160, 100, "Spicy traditional Pakistani nimko mix", "Local Manufacturer"},
	{"Til Gajak (250g)", "Gajak", "GJK-011", 60, 12, 220, 150, "Traditional sesame jaggery sweet", "Local Sweet Shop"},
	{"Til Rewari (250g)", "Rewari", "RWR-012", 55, 10, 180, 120, "Sesame candy made with jaggery", "Local Sweet Shop"},
}

// SeedDemoData carga el catálogo de demostración (tienda de dulces y snacks)
// en un store recién creado. Pensado para entornos de desarrollo; se activa
// con SEED_DEMO_DATA=true.
func SeedDemoData(s *Store) int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range demoCatalog {
		s.createProduct(&entity.Product{
			ID:          uuid.New().String(),
			Name:        sp.name,
			Category:    sp.category,
			SKU:         sp.sku,
			Stock:       sp.stock,
			MinStock:    sp.minStock,
			Price:       decimal.NewFromInt(sp.price),
			Cost:        decimal.NewFromInt(sp.cost),
			Description: sp.description,
			Supplier:    sp.supplier,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return len(demoCatalog)
}
