package realtime

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	a := b.Subscribe()
	c := b.Subscribe()

	b.Publish("board")

	if got := <-a; got != "board" {
		t.Errorf("subscriber a: expected %q, got %q", "board", got)
	}
	if got := <-c; got != "board" {
		t.Errorf("subscriber c: expected %q, got %q", "board", got)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("expected channel closed after unsubscribe")
	}

	// Double unsubscribe is a no-op.
	b.Unsubscribe(ch)
	b.Publish("assets")
}

func TestLaggingSubscriberDoesNotBlockPublish(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	for i := 0; i < 100; i++ {
		b.Publish("board") // channel buffer fills; publishes keep returning
	}

	if got := <-ch; got != "board" {
		t.Errorf("expected buffered event, got %q", got)
	}
}
