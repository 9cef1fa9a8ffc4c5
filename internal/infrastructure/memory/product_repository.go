package memory

import (
	"github.com/geeky-dawood/snackstock-api/internal/domain/entity"
	"github.com/geeky-dawood/snackstock-api/internal/domain/repository"
)

// Ensure productRepository implements repository.ProductRepository.
var _ repository.ProductRepository = (*productRepository)(nil)

// productRepository vista del catálogo sobre el Store. Con locking=true cada
// método toma el lock (uso directo); sin locking opera dentro de Store.Run.
type productRepository struct {
	store   *Store
	locking bool
}

func (r *productRepository) Create(p *entity.Product) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.createProduct(p)
	return nil
}

func (r *productRepository) GetByID(id string) (*entity.Product, error) {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	p := r.store.findProduct(id)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepository) List() ([]*entity.Product, error) {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return r.store.listProducts(), nil
}

func (r *productRepository) Update(p *entity.Product) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return r.store.updateProduct(p)
}

func (r *productRepository) Delete(id string) error {
	if r.locking {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	return r.store.deleteProduct(id)
}
