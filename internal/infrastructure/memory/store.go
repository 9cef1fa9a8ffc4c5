// Package memory implementa el Inventory Store: el dueño único del catálogo
// de productos y del log de movimientos, todo en memoria de proceso.
//
// No hay persistencia: el estado vive lo que dura la sesión del servidor.
// Un solo sync.Mutex protege ambas colecciones; cada operación corre completa
// bajo el lock, así que ninguna mutación puede observarse a medias.
package memory

import (
	"context"
	"sync"

	"github.com/geeky-dawood/snackstock-api/internal/application/inventory"
	"github.com/geeky-dawood/snackstock-api/internal/domain"
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// Ensure Store implements inventory.TxRunner.
var _ inventory.TxRunner = (*Store)(nil)

// Store mantiene el catálogo (orden de creación) y el log de movimientos
// (más reciente primero). Se construye vacío con NewStore; no hay singleton.
type Store struct {
	mu        sync.Mutex
	products  []*entity.Product
	movements []*entity.StockMovement
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Products devuelve un repositorio de productos que toma el lock en cada llamada.
func (s *Store) Products() repository.ProductRepository {
	return &productRepository{store: s, locking: true}
}

// Movements devuelve un repositorio de movimientos que toma el lock en cada llamada.
func (s *Store) Movements() repository.StockMovementRepository {
	return &movementRepository{store: s, locking: true}
}

// Run ejecuta fn con el lock tomado durante toda la llamada: los repos que
// recibe fn operan sin volver a tomar el lock. Es el equivalente en memoria
// de una transacción; fn debe validar antes de mutar porque no hay rollback.
func (s *Store) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(
		&productRepository{store: s},
		&movementRepository{store: s},
	)
}

// ── Operaciones internas (el caller ya tiene el lock) ─────────────────────────

func (s *Store) findProduct(id string) *entity.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) createProduct(p *entity.Product) {
	cp := *p
	s.products = append(s.products, &cp)
}

func (s *Store) updateProduct(p *entity.Product) error {
	for i, existing := range s.products {
		if existing.ID == p.ID {
			cp := *p
			s.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) deleteProduct(id string) error {
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) listProducts() []*entity.Product {
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (s *Store) findMovement(id string) *entity.StockMovement {
	for _, m := range s.movements {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// createMovement antepone: el log queda con el más reciente primero.
func (s *Store) createMovement(m *entity.StockMovement) {
	cp := *m
	s.movements = append([]*entity.StockMovement{&cp}, s.movements...)
}

func (s *Store) updateMovement(m *entity.StockMovement) error {
	for i, existing := range s.movements {
		if existing.ID == m.ID {
			cp := *m
			s.movements[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) deleteMovement(id string) error {
	for i, m := range s.movements {
		if m.ID == id {
			s.movements = append(s.movements[:i], s.movements[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) listMovements() []*entity.StockMovement {
	out := make([]*entity.StockMovement, 0, len(s.movements))
	for _, m := range s.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out
}
