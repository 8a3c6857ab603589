package events

import (
	"log/slog"
	"sync"

	"waxcrate/internal/logging"
)

// Bus is a single-topic publish/subscribe channel: "the collection changed".
// It decouples the write path (add/edit flows) from the read path (browse
// surface) without either holding a reference to the other.
//
// The bus is an explicit, constructible object owned by the composition root
// and injected where needed; there is no package-level instance.
type Bus struct {
	mu       sync.Mutex
	handlers []subscriber
	nextID   int
	logger   *slog.Logger
}

type subscriber struct {
	id int
	fn func()
}

// NewBus constructs an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Bus{logger: logger}
}

// Subscribe registers a zero-argument handler and returns a function that
// deregisters exactly that handler. Subscribers that outlive their interest
// must call it to avoid being invoked against disposed state.
func (b *Bus) Subscribe(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers = append(b.handlers, subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.handlers {
			if sub.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Notify invokes every currently registered handler synchronously, in
// registration order. A panicking handler is isolated and logged so one
// broken subscriber cannot block the rest.
func (b *Bus) Notify() {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.handlers))
	copy(snapshot, b.handlers)
	b.mu.Unlock()

	for _, sub := range snapshot {
		b.invoke(sub)
	}
}

func (b *Bus) invoke(sub subscriber) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("collection change handler panicked", slog.Any("panic", r))
		}
	}()
	sub.fn()
}
