package product

import "context"

// Repository is the remote products collection. Update and Delete use filter
// semantics: an id that matches no row is not an error.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, in ProductInput) error
	Update(ctx context.Context, id int64, in ProductInput) error
	Delete(ctx context.Context, id int64) error
}
