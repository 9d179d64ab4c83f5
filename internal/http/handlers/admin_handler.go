package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/diagnosis/luxehaven/internal/domain"
	"github.com/diagnosis/luxehaven/internal/http/response"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type BookingReader interface {
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Booking, error)
}

// AdminHandler serves the front-desk view of received bookings. Callers are
// expected to mount it behind RequireJWT.
type AdminHandler struct {
	Bookings BookingReader
}

func NewAdminHandler(bookings BookingReader) *AdminHandler {
	return &AdminHandler{Bookings: bookings}
}

func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/{id}", h.getByID)
	return r
}

func (h *AdminHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			response.WriteError(w, http.StatusBadRequest, "limit must be a positive integer", response.CodeInvalidInput)
			return
		}
		limit = min(n, maxListLimit)
	}

	items, err := h.Bookings.ListRecent(r.Context(), limit)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list bookings", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "failed to list bookings", response.CodeInternalError)
		return
	}
	if items == nil {
		items = []domain.Booking{}
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"bookings": items, "count": len(items)})
}

func (h *AdminHandler) getByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.Bookings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to load booking", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "failed to load booking", response.CodeInternalError)
		return
	}
	if b == nil {
		response.NotFound(w, "booking not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, b)
}
