package product

import (
	"context"
	"sort"
	"sync"
)

type memoryRepo struct {
	mu     sync.RWMutex
	rows   map[int64]Product
	nextID int64
}

// NewMemoryRepository returns an in-process Repository that assigns ids the
// way the remote store does.
func NewMemoryRepository(seed ...ProductInput) Repository {
	r := &memoryRepo{rows: make(map[int64]Product), nextID: 1}
	for _, in := range seed {
		r.insert(in)
	}
	return r
}

func (r *memoryRepo) insert(in ProductInput) {
	r.rows[r.nextID] = Product{ID: r.nextID, Name: in.Name, Price: in.Price}
	r.nextID++
}

func (r *memoryRepo) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]Product, 0, len(r.rows))
	for _, p := range r.rows {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *memoryRepo) Create(ctx context.Context, in ProductInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(in)
	return nil
}

func (r *memoryRepo) Update(ctx context.Context, id int64, in ProductInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; ok {
		r.rows[id] = Product{ID: id, Name: in.Name, Price: in.Price}
	}
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}
