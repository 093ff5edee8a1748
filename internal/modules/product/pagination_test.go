package product

import (
	"testing"

	"github.com/go-faster/errors"
)

func seq(n int) []Product {
	products := make([]Product, n)
	for i := range products {
		products[i] = Product{ID: int64(i + 1), Name: "p", Price: float64(i)}
	}
	return products
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name              string
		total, page, size int
		from, to, pages   int
		label             string
	}{
		{"first page", 7, 0, 3, 0, 3, 3, "1-3 of 7"},
		{"middle page", 7, 1, 3, 3, 6, 3, "4-6 of 7"},
		{"last partial page", 7, 2, 3, 6, 7, 3, "7-7 of 7"},
		{"exact fit", 4, 1, 2, 2, 4, 2, "3-4 of 4"},
		{"past the end", 7, 5, 2, 10, 7, 4, "11-7 of 7"},
		{"empty list", 0, 0, 2, 0, 0, 0, "1-0 of 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Paginate(tt.total, tt.page, tt.size)
			if w.From != tt.from || w.To != tt.to {
				t.Fatalf("window [%d,%d), want [%d,%d)", w.From, w.To, tt.from, tt.to)
			}
			if w.NumberOfPages != tt.pages {
				t.Fatalf("pages %d, want %d", w.NumberOfPages, tt.pages)
			}
			if w.Label != tt.label {
				t.Fatalf("label %q, want %q", w.Label, tt.label)
			}
		})
	}
}

func TestWindowSlice(t *testing.T) {
	products := seq(7)

	got := Paginate(7, 2, 3).Slice(products)
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("expected only the 7th product, got %+v", got)
	}

	if got := Paginate(7, 5, 2).Slice(products); len(got) != 0 {
		t.Fatalf("expected empty slice past the end, got %d items", len(got))
	}
}

func TestPagerKeepsPageWhenSizeChanges(t *testing.T) {
	p := NewPager(nil)
	products := seq(7)

	if v := p.View(products); v.ItemsPerPage != 2 || len(v.Items) != 2 {
		t.Fatalf("expected default of 2 per page, got %+v", v.Window)
	}
	if err := p.SetPage(3); err != nil {
		t.Fatal(err)
	}
	if err := p.SetItemsPerPage(4); err != nil {
		t.Fatal(err)
	}
	v := p.View(products)
	if v.Page != 3 {
		t.Fatalf("page changed to %d", v.Page)
	}
	if len(v.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(v.Items))
	}
	if len(v.ItemsPerPageOptions) != 3 {
		t.Fatalf("options %v", v.ItemsPerPageOptions)
	}
}

func TestPagerRejectsUnknownSizeAndNegativePage(t *testing.T) {
	p := NewPager([]int{5, 10})
	if err := p.SetItemsPerPage(3); !errors.Is(err, ErrPageSize) {
		t.Fatalf("expected ErrPageSize, got %v", err)
	}
	if err := p.SetPage(-1); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
	if v := p.View(seq(12)); v.ItemsPerPage != 5 || v.Page != 0 {
		t.Fatalf("state changed after rejected calls: %+v", v.Window)
	}
}

func TestPagerSetIsAllOrNothing(t *testing.T) {
	p := NewPager(nil)
	page, size := -1, 4
	if err := p.Set(&page, &size); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
	page, size = 1, 7
	if err := p.Set(&page, &size); !errors.Is(err, ErrPageSize) {
		t.Fatalf("expected ErrPageSize, got %v", err)
	}
	if v := p.View(seq(7)); v.Page != 0 || v.ItemsPerPage != 2 {
		t.Fatalf("rejected Set changed the pager: %+v", v.Window)
	}

	page, size = 1, 3
	if err := p.Set(&page, &size); err != nil {
		t.Fatal(err)
	}
	if v := p.View(seq(7)); v.Page != 1 || v.ItemsPerPage != 3 {
		t.Fatalf("Set not applied: %+v", v.Window)
	}
}
