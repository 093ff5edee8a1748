package counter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func TestHandlerRoutes(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(NewStore(), zerolog.Nop()).RegisterRoutes(router)

	steps := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/v1/counter", 0},
		{http.MethodPost, "/api/v1/counter/increase", 1},
		{http.MethodPost, "/api/v1/counter/increase", 2},
		{http.MethodPost, "/api/v1/counter/decrease", 1},
		{http.MethodPost, "/api/v1/counter/reset", 0},
	}
	for _, step := range steps {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(step.method, step.path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s %s: status %d", step.method, step.path, rr.Code)
		}
		var resp countResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Count != step.want {
			t.Fatalf("%s %s: count %d, want %d", step.method, step.path, resp.Count, step.want)
		}
	}
}

func TestHandlerRejectsGetOnMutation(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(NewStore(), zerolog.Nop()).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/counter/increase", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
