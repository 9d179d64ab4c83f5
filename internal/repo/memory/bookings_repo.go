// Package memory holds the process-local booking sink used when no database
// is configured.
package memory

import (
	"context"
	"sync"

	"github.com/diagnosis/luxehaven/internal/domain"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

type BookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	order    []string
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{bookings: make(map[string]domain.Booking)}
}

func (r *BookingRepo) Save(ctx context.Context, b domain.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[b.ID]; exists {
		return b.ID, nil
	}
	r.bookings[b.ID] = b
	r.order = append(r.order, b.ID)

	logger.InfoContext(ctx, "Saving booking",
		"booking_id", b.ID,
		"email", b.Email,
		"service_type", b.ServiceType,
		"check_in", b.CheckInDate,
		"check_out", b.CheckOutDate,
	)
	return b.ID, nil
}

func (r *BookingRepo) Get(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// ListRecent returns up to limit bookings, newest first.
func (r *BookingRepo) ListRecent(_ context.Context, limit int) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, 0, min(limit, len(r.order)))
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.bookings[r.order[i]])
	}
	return out, nil
}

func (r *BookingRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
