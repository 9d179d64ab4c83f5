// Package catalog holds the read-only hotel content served next to the
// booking API: rooms, amenities, testimonials and bookable services.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diagnosis/luxehaven/internal/domain"
)

type RoomCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Room struct {
	ID            int      `json:"id"`
	Category      string   `json:"category"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice"`
	Image         string   `json:"image"`
	Beds          int      `json:"beds"`
	Guests        int      `json:"guests"`
	Size          string   `json:"size"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
}

type Amenity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
	StayType string `json:"stayType"`
	Date     string `json:"date"`
}

type Service struct {
	ID    domain.ServiceType `json:"id"`
	Label string             `json:"label"`
}

const (
	CategoryAll = "all"

	SortPrice     = "price"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	categories   []RoomCategory
	rooms        []Room
	amenities    []Amenity
	testimonials []Testimonial
}

func New() *Catalog {
	return &Catalog{
		categories:   categories,
		rooms:        rooms,
		amenities:    amenities,
		testimonials: testimonials,
	}
}

func (c *Catalog) Categories() []RoomCategory {
	return append([]RoomCategory(nil), c.categories...)
}

// Rooms filters by category id ("" or "all" keeps everything) and sorts by
// price-high, rating, or price ascending for anything else. Unknown categories
// yield an empty, non-nil slice.
func (c *Catalog) Rooms(category, sortBy string) []Room {
	category = strings.TrimSpace(category)
	out := make([]Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		if category == "" || category == CategoryAll || r.Category == category {
			out = append(out, r)
		}
	}

	switch sortBy {
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	}
	return out
}

func (c *Catalog) Room(id int) (Room, bool) {
	for _, r := range c.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

func (c *Catalog) Amenities() []Amenity {
	return append([]Amenity(nil), c.amenities...)
}

func (c *Catalog) Testimonials() []Testimonial {
	return append([]Testimonial(nil), c.testimonials...)
}

func (c *Catalog) Services() []Service {
	types := domain.ServiceTypes()
	out := make([]Service, 0, len(types))
	for _, st := range types {
		out = append(out, Service{ID: st, Label: st.Label()})
	}
	return out
}

// TimeSlots lists preferred arrival times from 09:00 to 20:00 in 30 minute steps.
func TimeSlots() []string {
	const (
		first = 9 * time.Hour
		last  = 20 * time.Hour
		step  = 30 * time.Minute
	)
	slots := make([]string, 0, int((last-first)/step)+1)
	for d := first; d <= last; d += step {
		slots = append(slots, fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60))
	}
	return slots
}
