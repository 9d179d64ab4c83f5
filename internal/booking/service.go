// Package booking turns submitted inquiries into accepted bookings.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diagnosis/luxehaven/internal/domain"
	"github.com/diagnosis/luxehaven/pkg/events"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

// Store persists accepted bookings. Save must be idempotent per booking id.
type Store interface {
	Save(ctx context.Context, b domain.Booking) (string, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Booking, error)
}

type Notifier interface {
	SendConfirmation(ctx context.Context, b domain.Booking) error
	SendAdminNotification(ctx context.Context, b domain.Booking) error
}

// ErrDelivery wraps a failed guest confirmation.
var ErrDelivery = errors.New("booking: confirmation delivery failed")

type Service struct {
	store     Store
	notifier  Notifier
	publisher events.Publisher
	newID     func() string
	now       func() time.Time
}

type Option func(*Service)

func WithIDFunc(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, notifier Notifier, publisher events.Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	s := &Service{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates req and, when it passes, stores the booking and sends the
// guest confirmation. Admin notification and event publishing are best effort.
func (s *Service) Submit(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	now := s.now()

	b, err := Validate(req, now)
	if err != nil {
		return domain.Booking{}, err
	}

	b.ID = s.newID()
	b.CreatedAt = now.UTC()

	id, err := s.store.Save(ctx, b)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	b.ID = id

	ctx = context.WithValue(ctx, logger.BookingIDKey, b.ID)

	if err := s.notifier.SendConfirmation(ctx, b); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if err := s.notifier.SendAdminNotification(ctx, b); err != nil {
		logger.WarnContext(ctx, "Admin notification failed", "error", err)
	}

	event := events.BookingSubmittedEvent{
		BookingID:      b.ID,
		Email:          b.Email,
		FullName:       b.FullName,
		ServiceType:    string(b.ServiceType),
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		NumberOfGuests: b.NumberOfGuests,
		CreatedAt:      b.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.BookingSubmitted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking submitted event", "error", err)
	}

	logger.InfoContext(ctx, "Booking accepted", "service_type", b.ServiceType, "guests", b.NumberOfGuests)
	return b, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Booking, error) {
	return s.store.ListRecent(ctx, limit)
}
