package events_test

import (
	"testing"

	"waxcrate/internal/events"
	"waxcrate/internal/logging"
)

func TestNotifyFansOutToAllSubscribers(t *testing.T) {
	bus := events.NewBus(logging.Nop())

	h1, h2 := 0, 0
	bus.Subscribe(func() { h1++ })
	bus.Subscribe(func() { h2++ })

	bus.Notify()
	if h1 != 1 || h2 != 1 {
		t.Fatalf("expected each handler invoked once, got h1=%d h2=%d", h1, h2)
	}
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	bus := events.NewBus(logging.Nop())

	h1, h2 := 0, 0
	unsub := bus.Subscribe(func() { h1++ })
	bus.Subscribe(func() { h2++ })

	unsub()
	bus.Notify()

	if h1 != 0 {
		t.Fatalf("unsubscribed handler still invoked %d times", h1)
	}
	if h2 != 1 {
		t.Fatalf("remaining handler invoked %d times, want 1", h2)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	bus := events.NewBus(logging.Nop())

	calls := 0
	unsub := bus.Subscribe(func() { calls++ })
	survivor := 0
	bus.Subscribe(func() { survivor++ })

	unsub()
	unsub()
	bus.Notify()

	if calls != 0 || survivor != 1 {
		t.Fatalf("unexpected invocations: calls=%d survivor=%d", calls, survivor)
	}
}

func TestNotifyInvokesInRegistrationOrder(t *testing.T) {
	bus := events.NewBus(logging.Nop())

	var order []string
	bus.Subscribe(func() { order = append(order, "first") })
	bus.Subscribe(func() { order = append(order, "second") })
	bus.Subscribe(func() { order = append(order, "third") })

	bus.Notify()
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestPanickingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := events.NewBus(logging.Nop())

	after := 0
	bus.Subscribe(func() { panic("broken subscriber") })
	bus.Subscribe(func() { after++ })

	bus.Notify()
	if after != 1 {
		t.Fatalf("handler after panicking subscriber not invoked, after=%d", after)
	}
}

func TestNotifyWithoutSubscribers(t *testing.T) {
	bus := events.NewBus(logging.Nop())
	bus.Notify()
}
