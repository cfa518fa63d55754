// Package events provides the in-process change notification channel
// for the data layer. Every mutating store call publishes an event so
// already-mounted consumers can re-derive state without polling.
package events

import (
	"reflect"
	"sync"
	"time"
)

// Op describes what happened to a collection.
type Op string

const (
	OpSaved   Op = "saved"
	OpDeleted Op = "deleted"
	OpCleared Op = "cleared"
)

// Event is a single change notification.
type Event struct {
	Collection string    `json:"collection"`
	Op         Op        `json:"op"`
	ID         string    `json:"id,omitempty"`
	Time       time.Time `json:"time"`
}

// Bus fans out change events to subscribers. Channels are buffered so
// a slow subscriber never blocks the mutating call; a full channel
// drops the event instead.
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan Event
	closed      bool
}

const subscriberBuffer = 16

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe returns a channel that will receive events until
// Unsubscribe or Close.
func (b *Bus) Subscribe() <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscriber channel and closes it.
func (b *Bus) Unsubscribe(ch <-chan Event) {
	if ch == nil {
		return
	}
	target := reflect.ValueOf(ch).Pointer()
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subscribers {
		if reflect.ValueOf(sub).Pointer() == target {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			close(sub)
			break
		}
	}
}

// Publish delivers an event to every subscriber without blocking.
func (b *Bus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, sub := range b.subscribers {
		select {
		case sub <- e:
		default: // drop if channel full
		}
	}
}

// Close shuts down the bus and all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, sub := range b.subscribers {
		close(sub)
	}
	b.subscribers = nil
}
