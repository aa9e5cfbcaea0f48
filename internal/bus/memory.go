package bus

import (
	"context"
	"sync"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// MemoryBus broadcasts events between listeners of one process.
// A listener that is not keeping up misses events instead of blocking publishers.
type MemoryBus struct {
	mu        sync.Mutex
	next      int
	listeners map[int]chan models.Event
}

// NewMemoryBus creates a bus with no listeners.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{listeners: make(map[int]chan models.Event)}
}

// Publish hands ev to every listener.
func (b *MemoryBus) Publish(ctx context.Context, ev models.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.listeners {
		select {
		case ch <- ev:
		default:
			logger.Log.Warnw("listener is behind, event dropped", "listener", id, "event_id", ev.ID)
		}
	}
	return nil
}

// Listen registers a listener with the given buffer. The returned func
// unregisters it and closes the channel.
func (b *MemoryBus) Listen(buffer int) (<-chan models.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan models.Event, buffer)
	b.listeners[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.listeners, id)
			close(ch)
		})
	}
}

// Subscribe calls handler for every event until ctx is done.
func (b *MemoryBus) Subscribe(ctx context.Context, handler func(models.Event)) error {
	ch, stop := b.Listen(16)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-ch:
			handler(ev)
		}
	}
}
