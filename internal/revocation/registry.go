// Package revocation keeps revoked token ids in memory until the tokens
// would have expired on their own.
package revocation

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source used to decide expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry is a process-local set of revoked token ids. Each id is kept
// until its expiry has passed. It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	queue   expiryQueue
	now     func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Revoke records jti as revoked until expiresAt. Revoking an id again
// replaces its expiry.
func (r *Registry) Revoke(jti string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[jti]; ok {
		e.expiresAt = expiresAt
		heap.Fix(&r.queue, e.index)
		return
	}

	e := &entry{jti: jti, expiresAt: expiresAt}
	heap.Push(&r.queue, e)
	r.entries[jti] = e
}

// IsRevoked drops expired entries and then reports whether jti is revoked.
func (r *Registry) IsRevoked(jti string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	_, ok := r.entries[jti]
	return ok
}

// Sweep drops expired entries and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sweepLocked()
}

// Len returns the number of entries currently held, expired or not.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Run sweeps the registry every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// An entry whose expiry is not after now is expired.
func (r *Registry) sweepLocked() int {
	now := r.now()
	removed := 0
	for r.queue.Len() > 0 && !r.queue[0].expiresAt.After(now) {
		e := heap.Pop(&r.queue).(*entry)
		delete(r.entries, e.jti)
		removed++
	}
	return removed
}

type entry struct {
	jti       string
	expiresAt time.Time
	index     int
}

// expiryQueue is a min-heap of entries ordered by expiry.
type expiryQueue []*entry

func (q expiryQueue) Len() int { return len(q) }

func (q expiryQueue) Less(i, j int) bool { return q[i].expiresAt.Before(q[j].expiresAt) }

func (q expiryQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *expiryQueue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *expiryQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
