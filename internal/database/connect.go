// Package database opens the connections used by the data backends.
package database

import (
	"github.com/go-faster/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/supabase-community/supabase-go"
)

// ConnectPostgres opens and pings a Postgres connection pool.
func ConnectPostgres(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	return db, nil
}

// ConnectSupabase builds a Supabase client for the project at url. No request
// is made until the first query.
func ConnectSupabase(url, key string) (*supabase.Client, error) {
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create supabase client")
	}
	return client, nil
}
