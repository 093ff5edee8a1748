package product

import (
	"context"
	"strconv"

	postgrest "github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

type supabaseRepo struct {
	client *supabase.Client
	table  string
}

// NewSupabaseRepository returns a Repository backed by a Supabase project's
// REST endpoint.
func NewSupabaseRepository(client *supabase.Client, table string) Repository {
	return &supabaseRepo{client: client, table: table}
}

func (r *supabaseRepo) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var products []Product
	_, err := r.client.From(r.table).
		Select("id,name,price", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&products)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

func (r *supabaseRepo) Create(ctx context.Context, in ProductInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(r.table).
		Insert([]ProductInput{in}, false, "", "minimal", "").
		Execute()
	return err
}

func (r *supabaseRepo) Update(ctx context.Context, id int64, in ProductInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(r.table).
		Update(in, "minimal", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	return err
}

func (r *supabaseRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(r.table).
		Delete("minimal", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	return err
}
