package paymentmethod

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler exposes payment method HTTP endpoints.
type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/payment-methods", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListActive(r.Context())
	if err != nil {
		h.log.Error("list payment methods failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		respond(w, apperr.HTTPStatus(apperr.KindOf(err)), map[string]string{"error": apperr.PublicMessage(err)})
		return
	}
	respond(w, http.StatusOK, methods)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
