package csrf

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_IssueThenValidate(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Issue(ctx)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(token) != 2*tokenBytes {
		t.Fatalf("expected %d hex chars, got %q", 2*tokenBytes, token)
	}
	if ttl := mr.TTL(redisKeyPrefix + token); ttl != time.Hour {
		t.Fatalf("expected key ttl 1h, got %s", ttl)
	}

	for i := 0; i < 2; i++ {
		ok, err := store.Validate(ctx, token)
		if err != nil || !ok {
			t.Fatalf("validate %d: ok=%v err=%v", i, ok, err)
		}
	}
}

func TestRedisStore_Validate(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()
	token, err := store.Issue(ctx)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"issued", token, true},
		{"unknown", "deadbeef", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := store.Validate(ctx, tt.token)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if ok != tt.want {
				t.Fatalf("got %v, want %v", ok, tt.want)
			}
		})
	}

	mr.FastForward(time.Minute)
	if ok, _ := store.Validate(ctx, token); ok {
		t.Fatal("expired token must be rejected")
	}
}

func TestRedisStore_EmptyTokenSkipsLookup(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)

	before := mr.CommandCount()
	ok, err := store.Validate(context.Background(), "")
	if ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if mr.CommandCount() != before {
		t.Fatal("empty token must not reach redis")
	}
}

func TestRedisStore_BackendErrors(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	mr.SetError("ERR backend unavailable")

	if _, err := store.Issue(context.Background()); err == nil {
		t.Fatal("expected issue error")
	}
	if ok, err := store.Validate(context.Background(), "abc"); ok || err == nil {
		t.Fatalf("expected lookup error, got ok=%v err=%v", ok, err)
	}
}
