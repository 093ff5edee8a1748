package counter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler exposes the counter over HTTP.
type Handler struct {
	store *Store
	log   zerolog.Logger
}

func NewHandler(store *Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log.With().Str("module", "counter").Logger()}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/counter", func(r chi.Router) {
		r.Get("/", h.get)
		r.Post("/increase", h.mutate("increase", h.store.Increase))
		r.Post("/decrease", h.mutate("decrease", h.store.Decrease))
		r.Post("/reset", h.mutate("reset", h.store.Reset))
	})
}

type countResponse struct {
	Count int `json:"count"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, countResponse{Count: h.store.Value()})
}

func (h *Handler) mutate(op string, fn func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := fn()
		h.log.Debug().Str("op", op).Int("count", count).Msg("counter changed")
		h.respond(w, countResponse{Count: count})
	}
}

func (h *Handler) respond(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error().Err(err).Msg("encode response")
	}
}
