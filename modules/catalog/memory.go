package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps products in process memory. Barcode is comparable,
// so it serves directly as the map key. Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[Barcode]Product
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[Barcode]Product)}
}

// FindByBarcode implements Repository.
func (r *MemoryRepository) FindByBarcode(ctx context.Context, code Barcode) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[code]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// FindByDescription implements Repository.
func (r *MemoryRepository) FindByDescription(ctx context.Context, desc Description) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]Product, 0)
	for _, p := range r.items {
		if p.Description == desc {
			matches = append(matches, p)
		}
	}
	// Map iteration order is random; sort for a stable result.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Barcode.String() < matches[j].Barcode.String()
	})
	return matches, nil
}

// Save implements Repository.
func (r *MemoryRepository) Save(ctx context.Context, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[p.Barcode]; ok && existing.ID != p.ID {
		return ErrDuplicateBarcode
	}
	r.items[p.Barcode] = p
	return nil
}

// Len reports the number of stored products.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
