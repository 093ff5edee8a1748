package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handler exposes the products screen over HTTP.
type Handler struct {
	service Service
	log     zerolog.Logger
}

func NewHandler(service Service, log zerolog.Logger) *Handler {
	return &Handler{service: service, log: log.With().Str("module", "product").Logger()}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.addProduct)
		r.Post("/refresh", h.refresh)
		r.Get("/form", h.getForm)

		r.Get("/page", h.getPage)
		r.Put("/page", h.setPage)

		r.Get("/edit", h.getEditor)
		r.Put("/edit", h.saveEdit)
		r.Delete("/edit", h.cancelEdit)

		r.Post("/{id}/edit", h.beginEdit)
		r.Delete("/{id}", h.deleteProduct)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.service.Products())
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, h.service.Products())
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.service.Form())
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form, err := h.service.Add(r.Context(), form)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, map[string]interface{}{
		"form":     form,
		"products": h.service.Products(),
	})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, h.service.Products())
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.service.Page())
}

type pageRequest struct {
	Page         *int `json:"page"`
	ItemsPerPage *int `json:"items_per_page"`
}

func (h *Handler) setPage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.service.SetPagination(req.Page, req.ItemsPerPage)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, view)
}

func (h *Handler) beginEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	draft, err := h.service.BeginEdit(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, draft)
}

func (h *Handler) getEditor(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.service.Editing()
	if !ok {
		h.respondError(w, alert(alertEditClosed, ErrNoEditor))
		return
	}
	h.respond(w, http.StatusOK, draft)
}

func (h *Handler) saveEdit(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SaveEdit(r.Context(), draft); err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, h.service.Products())
}

func (h *Handler) cancelEdit(w http.ResponseWriter, r *http.Request) {
	session := uuid.Nil
	if s := r.URL.Query().Get("session"); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		session = parsed
	}
	h.service.CancelEdit(session)
	w.WriteHeader(http.StatusNoContent)
}

func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

type alertResponse struct {
	Alert string `json:"alert"`
	Error string `json:"error"`
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrPageSize), errors.Is(err, ErrInvalidPage):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrNoEditor), errors.Is(err, ErrStaleEdit):
		status = http.StatusConflict
	case errors.Is(err, ErrRemote):
		status = http.StatusBadGateway
	}
	h.respond(w, status, alertResponse{Alert: AlertMessage(err), Error: err.Error()})
}

func (h *Handler) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error().Err(err).Int("status", status).Msg("encode response")
	}
}
