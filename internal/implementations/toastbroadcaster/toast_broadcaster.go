package toastbroadcaster

import (
	"apptrack/internal/core/domain/notification"
	"context"
	"sync"
)

// Broadcaster fans toasts out to the currently subscribed callbacks. There
// is no queue: a toast published while nobody is subscribed is dropped, and
// late subscribers never see earlier toasts.
type Broadcaster struct {
	lock        sync.RWMutex
	nextID      int
	subscribers map[int]func(toast notification.Toast)
}

func New() *Broadcaster {
	return &Broadcaster{subscribers: make(map[int]func(toast notification.Toast))}
}

func (b *Broadcaster) Publish(ctx context.Context, toast notification.Toast) {
	b.lock.RLock()
	subscribers := make([]func(toast notification.Toast), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		subscribers = append(subscribers, fn)
	}
	b.lock.RUnlock()

	for _, fn := range subscribers {
		fn(toast)
	}
}

// Subscribe registers fn for every subsequently published toast and returns
// the disposal handle. The handle may be called more than once.
func (b *Broadcaster) Subscribe(fn func(toast notification.Toast)) notification.Unsubscribe {
	b.lock.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn
	b.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.lock.Lock()
			delete(b.subscribers, id)
			b.lock.Unlock()
		})
	}
}
