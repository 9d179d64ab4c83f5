package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/diagnosis/luxehaven/internal/catalog"
	"github.com/diagnosis/luxehaven/internal/http/response"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

// Register adds the catalog routes directly to r; they share the /api prefix
// with the booking endpoints.
func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/rooms", h.rooms)
	r.Get("/rooms/{id}", h.room)
	r.Get("/amenities", h.amenities)
	r.Get("/testimonials", h.testimonials)
	r.Get("/services", h.services)
}

func (h *CatalogHandler) rooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	response.WriteJSON(w, http.StatusOK, map[string]any{
		"categories": h.Catalog.Categories(),
		"rooms":      h.Catalog.Rooms(q.Get("category"), q.Get("sort")),
	})
}

func (h *CatalogHandler) room(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "room not found")
		return
	}
	room, ok := h.Catalog.Room(id)
	if !ok {
		response.NotFound(w, "room not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, room)
}

func (h *CatalogHandler) amenities(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]any{"amenities": h.Catalog.Amenities()})
}

func (h *CatalogHandler) testimonials(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]any{"testimonials": h.Catalog.Testimonials()})
}

func (h *CatalogHandler) services(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]any{
		"services":  h.Catalog.Services(),
		"timeSlots": catalog.TimeSlots(),
	})
}
