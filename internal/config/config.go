// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-faster/errors"
)

// Data backends for the products collection.
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds everything main needs to wire the service.
type Config struct {
	Port            string
	Backend         string
	SupabaseURL     string
	SupabaseKey     string
	SupabaseRole    string
	DatabaseURL     string
	ProductsTable   string
	PageSizes       []int
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from the environment with defaults and checks
// that the selected backend has what it needs.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("APP_PORT", "8080"),
		Backend:       strings.ToLower(getenv("DATA_BACKEND", BackendSupabase)),
		SupabaseURL:   strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseKey:   os.Getenv("SUPABASE_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		ProductsTable: getenv("PRODUCTS_TABLE", "products"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "json"),
	}

	timeout, err := time.ParseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, errors.Wrap(err, "SHUTDOWN_TIMEOUT")
	}
	cfg.ShutdownTimeout = timeout

	if cfg.PageSizes, err = parsePageSizes(getenv("PAGE_SIZES", "2,3,4")); err != nil {
		return Config{}, err
	}
	if !tableName.MatchString(cfg.ProductsTable) {
		return Config{}, errors.Errorf("PRODUCTS_TABLE %q is not a valid table name", cfg.ProductsTable)
	}

	switch cfg.Backend {
	case BackendSupabase:
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return Config{}, errors.New("SUPABASE_URL and SUPABASE_KEY are required for the supabase backend")
		}
		if cfg.SupabaseRole, err = KeyRole(cfg.SupabaseKey, time.Now()); err != nil {
			return Config{}, err
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for the postgres backend")
		}
	case BackendMemory:
	default:
		return Config{}, errors.Errorf("unknown DATA_BACKEND %q", cfg.Backend)
	}
	return cfg, nil
}

func parsePageSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, errors.Errorf("PAGE_SIZES: %q is not a positive integer", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// KeyRole returns the role claim of a legacy Supabase API key, which is a JWT.
// The signature is not checked; only the server can do that. Keys in the
// newer "sb_" format carry no claims and yield an empty role.
func KeyRole(key string, now time.Time) (string, error) {
	if strings.HasPrefix(key, "sb_") {
		return "", nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(key, claims); err != nil {
		return "", errors.Wrap(err, "SUPABASE_KEY is not a valid JWT")
	}
	if !claims.VerifyExpiresAt(now.Unix(), false) {
		return "", errors.New("SUPABASE_KEY has expired")
	}
	role, _ := claims["role"].(string)
	return role, nil
}
