package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.summary) // GET /dashboard?month=YYYY-MM
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.MonthSummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		kind := apperr.KindOf(err)
		if kind == apperr.Storage {
			h.log.Error("dashboard request failed",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Error(err))
		}
		respond(w, apperr.HTTPStatus(kind), map[string]string{"error": apperr.PublicMessage(err)})
		return
	}
	respond(w, http.StatusOK, sum)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
