package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diagnosis/luxehaven/internal/booking"
	"github.com/diagnosis/luxehaven/internal/domain"
	"github.com/diagnosis/luxehaven/internal/http/response"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

const maxBookingBody = 64 << 10

type BookingSubmitter interface {
	Submit(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
}

type BookingsHandler struct {
	Service BookingSubmitter
}

func NewBookingsHandler(svc BookingSubmitter) *BookingsHandler {
	return &BookingsHandler{Service: svc}
}

type createBookingRes struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	BookingID string         `json:"bookingId"`
	Data      domain.Booking `json:"data"`
}

// Create expects the content type and CSRF checks to have run already.
// Decoding fails only for bodies that are not a JSON object; wrongly typed
// fields come back from Submit as field errors.
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.BookingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBookingBody)).Decode(&in); err != nil {
		logger.WarnContext(r.Context(), "Rejected booking body", "error", err)
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	b, err := h.Service.Submit(r.Context(), in)
	if err != nil {
		var fe booking.FieldErrors
		if errors.As(err, &fe) {
			response.ValidationFailed(w, fe)
			return
		}
		logger.ErrorContext(r.Context(), "Booking submission error", "error", err)
		response.WriteErrorWithMessage(w, http.StatusInternalServerError,
			"Internal server error", "An unexpected error occurred while processing your booking")
		return
	}

	response.WriteJSON(w, http.StatusOK, createBookingRes{
		Success:   true,
		Message:   "Booking submitted successfully",
		BookingID: b.ID,
		Data:      b,
	})
}

// Preflight answers CORS preflight for the booking endpoint.
func (h *BookingsHandler) Preflight(w http.ResponseWriter, _ *http.Request) {
	hdr := w.Header()
	hdr.Set("Access-Control-Allow-Origin", "*")
	hdr.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	hdr.Set("Access-Control-Allow-Headers", "Content-Type, X-CSRF-Token")
	w.WriteHeader(http.StatusOK)
}
