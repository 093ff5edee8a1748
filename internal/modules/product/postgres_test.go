package product

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Runs against a real database only when TEST_DATABASE_URL is set. The
// products_test table is dropped afterwards.
func TestPostgresRepository(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	db.MustExec(`CREATE TABLE IF NOT EXISTS products_test (
		id    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name  TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL
	)`)
	defer db.MustExec(`DROP TABLE products_test`)

	repo := NewPostgresRepository(db, "products_test")
	ctx := context.Background()

	if err := repo.Create(ctx, ProductInput{Name: "Bread", Price: 4.2}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, ProductInput{Name: "Milk", Price: 3.5}); err != nil {
		t.Fatal(err)
	}
	products, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 || products[0].Name != "Bread" {
		t.Fatalf("unexpected list: %+v", products)
	}

	milk := products[1].ID
	if err := repo.Update(ctx, milk, ProductInput{Name: "Oat milk", Price: 4}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, products[0].ID); err != nil {
		t.Fatal(err)
	}
	products, err = repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0] != (Product{ID: milk, Name: "Oat milk", Price: 4}) {
		t.Fatalf("unexpected list: %+v", products)
	}
}
