// Package progress fans solver progress out to listeners without ever
// blocking the search loop.
package progress

import "sync"

// Update is one notification from a running solver.
type Update struct {
	RunID      string
	Generation int
	Total      int
	BestValue  float64
	MeanValue  float64
	StdDev     float64
}

// Bus is a publish/subscribe fan-out for Updates. Delivery is non-blocking,
// a slow listener misses updates instead of stalling the solver.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan Update
	closed bool
}

// NewBus creates an empty Bus.
func NewBus() *Bus { return &Bus{} }

// Publish sends the update to all subscribers that can take it immediately.
func (b *Bus) Publish(u Update) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

// Subscribe registers a subscriber and returns its channel.
func (b *Bus) Subscribe() <-chan Update {
	ch := make(chan Update, 8)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *Bus) Unsubscribe(sub <-chan Update) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.subs {
		if ch == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			if !b.closed {
				close(ch)
			}
			return
		}
	}
}

// Close closes all subscriber channels and clears the list.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.mu.Unlock()
}
