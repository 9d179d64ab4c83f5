package csrf

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestIssue_TokenIsValidImmediately(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		token, err := store.Issue(ctx)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 64 hex chars, got %d", len(token))
		}
		ok, err := store.Validate(ctx, token)
		if err != nil || !ok {
			t.Fatalf("expected token %s to be valid, ok=%v err=%v", token, ok, err)
		}
	}
}

func TestValidate_UnknownTokens(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10)
	ctx := context.Background()
	if _, err := store.Issue(ctx); err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, token := range []string{"", "short", "0000000000000000000000000000000000000000000000000000000000000000"} {
		ok, err := store.Validate(ctx, token)
		if err != nil {
			t.Fatalf("validate %q: %v", token, err)
		}
		if ok {
			t.Fatalf("expected %q to be rejected", token)
		}
	}
}

func TestIssue_ReuseUntilExpiry(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10)
	ctx := context.Background()
	token, _ := store.Issue(ctx)

	for i := 0; i < 3; i++ {
		if ok, _ := store.Validate(ctx, token); !ok {
			t.Fatalf("validation %d: token should remain valid", i)
		}
	}
}

func TestIssue_EvictsOldestWhenFull(t *testing.T) {
	const capacity = 1000
	store := NewMemoryStore(time.Hour, capacity)
	ctx := context.Background()

	var first, last string
	for i := 0; i < capacity+1; i++ {
		token, err := store.Issue(ctx)
		if err != nil {
			t.Fatalf("issue %d: %v", i, err)
		}
		if i == 0 {
			first = token
		}
		last = token
	}

	if got := store.Len(); got != capacity {
		t.Fatalf("expected %d tokens, got %d", capacity, got)
	}
	if ok, _ := store.Validate(ctx, first); ok {
		t.Fatal("oldest token should have been evicted")
	}
	if ok, _ := store.Validate(ctx, last); !ok {
		t.Fatal("most recent token should be valid")
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(30*time.Minute, 10, WithClock(clock.Now))
	ctx := context.Background()

	token, _ := store.Issue(ctx)
	clock.Advance(29 * time.Minute)
	if ok, _ := store.Validate(ctx, token); !ok {
		t.Fatal("token should be valid before expiry")
	}

	clock.Advance(time.Minute)
	if ok, _ := store.Validate(ctx, token); ok {
		t.Fatal("token should be invalid at expiry")
	}
	if store.Len() != 0 {
		t.Fatalf("expired token should be removed on lookup, len=%d", store.Len())
	}
}

func TestSweep_RemovesOnlyExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(time.Hour, 100, WithClock(clock.Now))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		store.Issue(ctx)
	}
	clock.Advance(45 * time.Minute)
	fresh, _ := store.Issue(ctx)
	clock.Advance(30 * time.Minute)

	if removed := store.Sweep(); removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	if ok, _ := store.Validate(ctx, fresh); !ok {
		t.Fatal("fresh token should survive sweep")
	}
}

func TestIssue_RandomFailure(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10, WithRandom(bytes.NewReader(nil)))

	_, err := store.Issue(context.Background())
	if !errors.Is(err, ErrGenerate) {
		t.Fatalf("expected ErrGenerate, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("nothing should be stored on failure")
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(time.Hour, 50)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				token, err := store.Issue(ctx)
				if err != nil {
					t.Errorf("issue: %v", err)
					return
				}
				store.Validate(ctx, token)
			}
		}()
	}
	wg.Wait()

	if got := store.Len(); got > 50 {
		t.Fatalf("store exceeded capacity: %d", got)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- store.Run(ctx, 10*time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
