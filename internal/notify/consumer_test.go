package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/diagnosis/luxehaven/pkg/events"
)

type mockSubscriber struct {
	subject, queue string
	handler        func(*events.Message)
}

func (m *mockSubscriber) Subscribe(subject string, handler func(*events.Message)) error {
	m.subject, m.handler = subject, handler
	return nil
}

func (m *mockSubscriber) QueueSubscribe(subject, queue string, handler func(*events.Message)) error {
	m.subject, m.queue, m.handler = subject, queue, handler
	return nil
}

func (m *mockSubscriber) Close() error { return nil }

func eventMessage(t *testing.T, ev events.BookingSubmittedEvent) *events.Message {
	t.Helper()
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return &events.Message{Subject: events.BookingSubmitted, Data: data, Timestamp: time.Now()}
}

// counterValue returns the value of the named counter with the given label
// pairs, or -1 when it was never incremented.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return -1
}

func TestBookingFeed_CountsByServiceType(t *testing.T) {
	reg := prometheus.NewRegistry()
	feed := NewBookingFeed(reg)
	sub := &mockSubscriber{}
	if err := feed.Subscribe(sub); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if sub.subject != events.BookingSubmitted || sub.queue != "notify" {
		t.Fatalf("unexpected subscription %q/%q", sub.subject, sub.queue)
	}

	sub.handler(eventMessage(t, events.BookingSubmittedEvent{BookingID: "bk-1", ServiceType: "spa", CreatedAt: time.Now()}))
	sub.handler(eventMessage(t, events.BookingSubmittedEvent{BookingID: "bk-2", ServiceType: "spa", CreatedAt: time.Now()}))
	sub.handler(eventMessage(t, events.BookingSubmittedEvent{BookingID: "bk-3", ServiceType: "dining", CreatedAt: time.Now()}))

	const name = "luxehaven_bookings_submitted_total"
	if got := counterValue(t, reg, name, map[string]string{"service_type": "spa"}); got != 2 {
		t.Fatalf("spa = %v, want 2", got)
	}
	if got := counterValue(t, reg, name, map[string]string{"service_type": "dining"}); got != 1 {
		t.Fatalf("dining = %v, want 1", got)
	}
}

func TestBookingFeed_RejectsInvalidPayloads(t *testing.T) {
	reg := prometheus.NewRegistry()
	feed := NewBookingFeed(reg)

	if err := feed.Handle(&events.Message{Subject: events.BookingSubmitted, Data: []byte("{")}); err == nil {
		t.Fatal("expected decode error")
	}
	if err := feed.Handle(eventMessage(t, events.BookingSubmittedEvent{ServiceType: "spa"})); err == nil {
		t.Fatal("expected missing id error")
	}
	if got := counterValue(t, reg, "luxehaven_booking_events_invalid_total", nil); got != 2 {
		t.Fatalf("invalid = %v, want 2", got)
	}
}
