package sale

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"github.com/georgemunganga/lojas-backend/internal/pagination"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler exposes sale HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.listStoreSales)         // GET  /sales?store_id=...
		r.Post("/", h.recordSale)            // POST /sales
		r.Get("/{id}", h.getSale)            // GET  /sales/{id}
		r.Post("/{id}/cancel", h.cancelSale) // POST /sales/{id}/cancel
	})
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	sale, err := h.service.RecordSale(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusCreated, sale)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.service.GetSale(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, sale)
}

func (h *Handler) listStoreSales(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.service.ListStoreSales(r.Context(), q.Get("store_id"), pagination.ParseParams(q))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, page)
}

func (h *Handler) cancelSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.service.CancelSale(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, sale)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Storage {
		h.log.Error("sale request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	respond(w, apperr.HTTPStatus(kind), map[string]string{"error": apperr.PublicMessage(err)})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
