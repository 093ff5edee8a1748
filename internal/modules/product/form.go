package product

import (
	"math"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Form is the text entered for a product before it is submitted.
type Form struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Input validates the form and converts it to a ProductInput.
func (f Form) Input() (ProductInput, error) {
	if f.Name == "" || f.Price == "" {
		return ProductInput{}, ErrMissingFields
	}
	price, err := parsePrice(f.Price)
	if err != nil {
		return ProductInput{}, err
	}
	return ProductInput{Name: f.Name, Price: price}, nil
}

func (f *Form) Clear() {
	f.Name = ""
	f.Price = ""
}

func parsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrap(ErrInvalidPrice, s)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.Wrap(ErrInvalidPrice, s)
	}
	return f, nil
}

func formatPrice(v float64) string {
	return decimal.NewFromFloat(v).String()
}
