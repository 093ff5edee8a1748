package product

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type postgresRepo struct {
	db    *sqlx.DB
	table string
}

// NewPostgresRepository returns a Repository that talks to the products table
// directly instead of going through the REST gateway.
func NewPostgresRepository(db *sqlx.DB, table string) Repository {
	return &postgresRepo{db: db, table: pq.QuoteIdentifier(table)}
}

func (r *postgresRepo) List(ctx context.Context) ([]Product, error) {
	products := []Product{}
	query := fmt.Sprintf(`SELECT id, name, price FROM %s ORDER BY id`, r.table)
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *postgresRepo) Create(ctx context.Context, in ProductInput) error {
	query := fmt.Sprintf(`INSERT INTO %s (name, price) VALUES (:name, :price)`, r.table)
	_, err := r.db.NamedExecContext(ctx, query, in)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in ProductInput) error {
	query := fmt.Sprintf(`UPDATE %s SET name=$1, price=$2 WHERE id=$3`, r.table)
	_, err := r.db.ExecContext(ctx, query, in.Name, in.Price, id)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.table)
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
