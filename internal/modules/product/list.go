package product

import "sync"

// List is the client-side copy of the products collection. It is only ever
// replaced as a whole, never patched.
type List struct {
	mu       sync.RWMutex
	products []Product
	loading  bool
}

// ListState is a point-in-time view of a List.
type ListState struct {
	Products []Product `json:"products"`
	Loading  bool      `json:"loading"`
}

func NewList() *List {
	return &List{products: []Product{}, loading: true}
}

// Replace swaps the whole list for products and clears the loading flag.
func (l *List) Replace(products []Product) {
	cp := make([]Product, len(products))
	copy(cp, products)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.products = cp
	l.loading = false
}

func (l *List) SetLoading(loading bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = loading
}

func (l *List) State() ListState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cp := make([]Product, len(l.products))
	copy(cp, l.products)
	return ListState{Products: cp, Loading: l.loading}
}

func (l *List) Find(id int64) (Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, p := range l.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
