package product

// Product is a row of the remote products collection. ID is assigned by the
// remote store and never changes.
type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}

// ProductInput holds the writable fields of a product.
type ProductInput struct {
	Name  string  `json:"name" db:"name"`
	Price float64 `json:"price" db:"price"`
}
