package sse

import (
	"strings"
	"testing"
	"time"
)

func TestSubscribePublishUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.PublishLibraryEvent("created", "library/rules/new.md")

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: library.created") {
			t.Errorf("message = %q", s)
		}
		if !strings.Contains(s, `"path":"library/rules/new.md"`) {
			t.Errorf("message = %q", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	b.Unsubscribe(ch)
	waitForClients(t, b, 0)
}

func TestCloseClosesClients(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	waitForClients(t, b, 1)

	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after Close")
	}

	// Operations on a closed broker are no-ops.
	b.Publish(Event{Type: "x"})
	if n := b.ClientCount(); n != 0 {
		t.Errorf("count after close = %d", n)
	}
}

func waitForClients(t *testing.T, b *Broker, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if b.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d", want)
}
