package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/diagnosis/luxehaven/pkg/events"
	"github.com/diagnosis/luxehaven/pkg/logger"
)

// BookingFeed consumes booking.submitted events for the front-desk feed and
// counts them by service type.
type BookingFeed struct {
	submitted *prometheus.CounterVec
	invalid   prometheus.Counter
}

func NewBookingFeed(reg prometheus.Registerer) *BookingFeed {
	f := &BookingFeed{
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luxehaven",
			Name:      "bookings_submitted_total",
			Help:      "Accepted booking inquiries by service type.",
		}, []string{"service_type"}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "luxehaven",
			Name:      "booking_events_invalid_total",
			Help:      "booking.submitted messages that could not be decoded.",
		}),
	}
	reg.MustRegister(f.submitted, f.invalid)
	return f
}

func (f *BookingFeed) Handle(msg *events.Message) error {
	var ev events.BookingSubmittedEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		f.invalid.Inc()
		return fmt.Errorf("decode %s: %w", msg.Subject, err)
	}
	if ev.BookingID == "" {
		f.invalid.Inc()
		return fmt.Errorf("decode %s: missing booking id", msg.Subject)
	}

	f.submitted.WithLabelValues(ev.ServiceType).Inc()

	ctx := context.WithValue(context.Background(), logger.BookingIDKey, ev.BookingID)
	logger.InfoContext(ctx, "New booking inquiry",
		"service_type", ev.ServiceType,
		"check_in", ev.CheckInDate,
		"check_out", ev.CheckOutDate,
		"guests", ev.NumberOfGuests,
		"lag_ms", msg.Timestamp.Sub(ev.CreatedAt).Milliseconds(),
	)
	return nil
}

// Subscribe joins the "notify" queue group so several consumers share the feed.
func (f *BookingFeed) Subscribe(sub events.Subscriber) error {
	return sub.QueueSubscribe(events.BookingSubmitted, "notify", func(msg *events.Message) {
		if err := f.Handle(msg); err != nil {
			logger.Warn("Dropped booking event", "error", err)
		}
	})
}
