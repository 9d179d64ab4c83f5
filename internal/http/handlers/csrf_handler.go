package handlers

import (
	"net/http"
	"time"

	"github.com/diagnosis/luxehaven/internal/csrf"
	"github.com/diagnosis/luxehaven/internal/http/response"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

type CSRFHandler struct {
	Store csrf.Store
	now   func() time.Time
}

func NewCSRFHandler(store csrf.Store) *CSRFHandler {
	return &CSRFHandler{Store: store, now: time.Now}
}

type csrfTokenRes struct {
	Token     string `json:"token"`
	Timestamp int64  `json:"timestamp"`
}

// Token issues a fresh anti-forgery token. Timestamp is Unix milliseconds.
func (h *CSRFHandler) Token(w http.ResponseWriter, r *http.Request) {
	token, err := h.Store.Issue(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "CSRF token generation error", "error", err)
		response.InternalError(w, "Failed to generate CSRF token")
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	response.WriteJSON(w, http.StatusOK, csrfTokenRes{Token: token, Timestamp: h.now().UnixMilli()})
}
