// Package csrf issues and checks the anti-forgery tokens that gate booking
// submission.
package csrf

import (
	"container/list"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/diagnosis/luxehaven/pkg/logger"
)

const (
	tokenBytes = 32

	DefaultTTL       = 2 * time.Hour
	DefaultMaxTokens = 1000
)

// ErrGenerate is returned when the random source fails.
var ErrGenerate = errors.New("csrf: token generation failed")

type Store interface {
	Issue(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) (bool, error)
}

// NewToken returns 32 random bytes hex encoded.
func NewToken(r io.Reader) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return hex.EncodeToString(buf), nil
}

type entry struct {
	token     string
	expiresAt time.Time
}

// MemoryStore keeps tokens in process memory. Every token carries its own
// expiry; when the store is full the oldest tokens are evicted first.
type MemoryStore struct {
	mu        sync.Mutex
	tokens    map[string]*list.Element
	order     *list.List // oldest at front
	ttl       time.Duration
	maxTokens int
	now       func() time.Time
	rand      io.Reader
}

type Option func(*MemoryStore)

func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

func WithRandom(r io.Reader) Option {
	return func(s *MemoryStore) { s.rand = r }
}

func NewMemoryStore(ttl time.Duration, maxTokens int, opts ...Option) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	s := &MemoryStore{
		tokens:    make(map[string]*list.Element),
		order:     list.New(),
		ttl:       ttl,
		maxTokens: maxTokens,
		now:       time.Now,
		rand:      rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Issue(_ context.Context) (string, error) {
	token, err := NewToken(s.rand)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	el := s.order.PushBack(&entry{token: token, expiresAt: now.Add(s.ttl)})
	s.tokens[token] = el

	s.dropExpiredLocked(now)
	for s.order.Len() > s.maxTokens {
		s.removeLocked(s.order.Front())
	}

	return token, nil
}

func (s *MemoryStore) Validate(_ context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	if !s.now().Before(el.Value.(*entry).expiresAt) {
		s.removeLocked(el)
		return false, nil
	}
	return true, nil
}

// Sweep removes every expired token and reports how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropExpiredLocked(s.now())
}

// Run sweeps on every tick until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Debug("Swept expired CSRF tokens", "removed", n, "remaining", s.Len())
			}
		}
	}
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// dropExpiredLocked relies on a fixed TTL: issue order equals expiry order,
// so it can stop at the first live token.
func (s *MemoryStore) dropExpiredLocked(now time.Time) int {
	removed := 0
	for el := s.order.Front(); el != nil; el = s.order.Front() {
		if now.Before(el.Value.(*entry).expiresAt) {
			break
		}
		s.removeLocked(el)
		removed++
	}
	return removed
}

func (s *MemoryStore) removeLocked(el *list.Element) {
	e := s.order.Remove(el).(*entry)
	delete(s.tokens, e.token)
}
