package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"

	pkgLog "delivery-agent/pkg/log"
	"delivery-agent/pkg/metrics"
)

const (
	DefaultMaxConversations = 1000
	DefaultTTL              = 30 * time.Minute
)

// Config bounds the store.
type Config struct {
	MaxConversations int
	TTL              time.Duration
}

// Store holds one Conversation per id, bounded by capacity and idle TTL.
type Store struct {
	mu     sync.Mutex
	cache  *expirable.LRU[string, *Conversation]
	active prometheus.Gauge
	l      pkgLog.Logger
}

// NewStore creates a conversation store.
func NewStore(cfg Config, l pkgLog.Logger) *Store {
	if cfg.MaxConversations <= 0 {
		cfg.MaxConversations = DefaultMaxConversations
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	s := &Store{l: l, active: metrics.ActiveConversations}
	s.cache = expirable.NewLRU[string, *Conversation](cfg.MaxConversations, s.onEvict, cfg.TTL)
	return s
}

// onEvict runs for every removal: capacity, TTL, Clear and ClearAll.
// The cache holds its own lock here, so it must not be called back.
func (s *Store) onEvict(id string, c *Conversation) {
	s.active.Dec()
	s.l.Debugf(context.Background(), "memory.Store: evicted conversation %s (%d turns)", id, c.Len())
}

// GetOrCreate returns the conversation for id, creating it on first access.
// Each access refreshes the idle TTL.
func (s *Store) GetOrCreate(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cache.Get(id)
	if !ok {
		// Drop an expired entry the cleanup has not reached yet.
		s.cache.Remove(id)
		c = newConversation(id)
		s.active.Inc()
	}
	s.cache.Add(id, c)
	return c
}

// Get returns the conversation for id without creating it.
func (s *Store) Get(id string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Peek(id)
}

// Clear drops the conversation for id. It reports whether one existed.
func (s *Store) Clear(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Remove(id)
}

// ClearAll drops every conversation and returns how many were dropped.
func (s *Store) ClearAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.cache.Len()
	s.cache.Purge()
	return n
}

// Len returns the number of live conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
