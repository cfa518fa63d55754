package events

import (
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBus()
	defer b.Close()

	first := b.Subscribe()
	second := b.Subscribe()

	b.Publish(Event{Collection: "mood_entries", Op: OpSaved, ID: "abc"})

	for i, ch := range []<-chan Event{first, second} {
		select {
		case e := <-ch:
			if e.Collection != "mood_entries" || e.Op != OpSaved || e.ID != "abc" {
				t.Errorf("subscriber %d: unexpected event %+v", i, e)
			}
			if e.Time.IsZero() {
				t.Errorf("subscriber %d: expected assigned time", i)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: no event received", i)
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBus()
	defer b.Close()

	ch := b.Subscribe()
	b.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("expected closed channel after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	b.Publish(Event{Collection: "notes", Op: OpDeleted})
}

func TestFullSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := NewBus()
	defer b.Close()

	ch := b.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Overfill the buffer; Publish must never block.
		for i := 0; i < subscriberBuffer*2; i++ {
			b.Publish(Event{Collection: "notes", Op: OpSaved})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	if got := len(ch); got != subscriberBuffer {
		t.Errorf("expected %d buffered events, got %d", subscriberBuffer, got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := NewBus()
	ch := b.Subscribe()

	b.Close()
	b.Close()

	if _, open := <-ch; open {
		t.Error("expected closed channel after bus close")
	}
	if sub := b.Subscribe(); sub == nil {
		t.Error("expected non-nil (closed) channel from closed bus")
	}
	b.Publish(Event{Collection: "notes"})
}
