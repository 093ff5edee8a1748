package product

import (
	"fmt"
	"sync"

	"github.com/go-faster/errors"
)

// DefaultPageSizes are the items-per-page choices offered when none are
// configured.
var DefaultPageSizes = []int{2, 3, 4}

// Window describes the visible part of a list of Total items.
type Window struct {
	Page          int    `json:"page"`
	ItemsPerPage  int    `json:"items_per_page"`
	NumberOfPages int    `json:"number_of_pages"`
	From          int    `json:"from"`
	To            int    `json:"to"`
	Total         int    `json:"total"`
	Label         string `json:"label"`
}

// Paginate computes the window [page*size, min((page+1)*size, total)).
// A page past the end yields an empty window; page is never clamped.
func Paginate(total, page, size int) Window {
	from := page * size
	to := (page + 1) * size
	if to > total {
		to = total
	}
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return Window{
		Page:          page,
		ItemsPerPage:  size,
		NumberOfPages: pages,
		From:          from,
		To:            to,
		Total:         total,
		Label:         fmt.Sprintf("%d-%d of %d", from+1, to, total),
	}
}

// Slice returns the products inside w. It is empty when the window starts
// beyond the data.
func (w Window) Slice(products []Product) []Product {
	if w.From >= w.To || w.From >= len(products) {
		return []Product{}
	}
	to := w.To
	if to > len(products) {
		to = len(products)
	}
	out := make([]Product, to-w.From)
	copy(out, products[w.From:to])
	return out
}

// PageView is what the products table shows.
type PageView struct {
	Window
	Items               []Product `json:"items"`
	ItemsPerPageOptions []int     `json:"items_per_page_options"`
}

// Pager holds the page index and items-per-page setting of the products table.
type Pager struct {
	mu    sync.RWMutex
	page  int
	size  int
	sizes []int
}

func NewPager(sizes []int) *Pager {
	if len(sizes) == 0 {
		sizes = DefaultPageSizes
	}
	cp := make([]int, len(sizes))
	copy(cp, sizes)
	return &Pager{size: cp[0], sizes: cp}
}

func (p *Pager) SetPage(page int) error {
	if page < 0 {
		return ErrInvalidPage
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = page
	return nil
}

// SetItemsPerPage changes the page size. The current page index is kept as is.
func (p *Pager) SetItemsPerPage(size int) error {
	return p.Set(nil, &size)
}

// Set applies page and size together; nil leaves that setting as it is. If
// either value is rejected, neither is applied.
func (p *Pager) Set(page, size *int) error {
	if page != nil && *page < 0 {
		return ErrInvalidPage
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if size != nil {
		if !p.offers(*size) {
			return errors.Wrap(ErrPageSize, fmt.Sprintf("%d not in %v", *size, p.sizes))
		}
		p.size = *size
	}
	if page != nil {
		p.page = *page
	}
	return nil
}

func (p *Pager) offers(size int) bool {
	for _, s := range p.sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Pager) View(products []Product) PageView {
	p.mu.RLock()
	w := Paginate(len(products), p.page, p.size)
	sizes := make([]int, len(p.sizes))
	copy(sizes, p.sizes)
	p.mu.RUnlock()

	return PageView{Window: w, Items: w.Slice(products), ItemsPerPageOptions: sizes}
}
