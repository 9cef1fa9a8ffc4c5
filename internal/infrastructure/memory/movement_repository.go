package memory

import (
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// Ensure movementRepository implements repository.StockMovementRepository.
var _ repository.StockMovementRepository = (*movementRepository)(nil)

// movementRepository vista del log de movimientos sobre el Store.
type movementRepository struct {
	store   *Store
	locking bool
}

func (r *movementRepository) Create(m *entity.StockMovement) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.createMovement(m)
	return nil
}

func (r *movementRepository) GetByID(id string) (*entity.StockMovement, error) {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	m := r.store.findMovement(id)
	if m == nil {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *movementRepository) List() ([]*entity.StockMovement, error) {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return r.store.listMovements(), nil
}

func (r *movementRepository) Update(m *entity.StockMovement) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return r.store.updateMovement(m)
}

func (r *movementRepository) Delete(id string) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return r.store.deleteMovement(id)
}
