package notificationinbox

import (
	"apptrack/internal/core/domain/appointment"
	"apptrack/internal/core/domain/notification"
	"context"
	"sync"
)

const DefaultCapacity = 200

// Inbox keeps notifications in memory, newest first. Adding an already-known
// ID is a no-op, so a replayed reminder event never shows up twice. When the
// cap is reached the oldest notifications are evicted.
type Inbox struct {
	lock     sync.RWMutex
	capacity int
	byID     map[notification.ID]int
	entries  []notification.Notification
}

func New(capacity int) *Inbox {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inbox{
		capacity: capacity,
		byID:     make(map[notification.ID]int),
	}
}

func (i *Inbox) Add(ctx context.Context, n notification.Notification) error {
	i.lock.Lock()
	defer i.lock.Unlock()
	if _, ok := i.byID[n.ID]; ok {
		return nil
	}
	i.entries = append(i.entries, n)
	if len(i.entries) > i.capacity {
		evicted := i.entries[0]
		i.entries = i.entries[1:]
		delete(i.byID, evicted.ID)
	}
	i.reindex()
	return nil
}

func (i *Inbox) List(
	ctx context.Context,
	ownerID appointment.UserID,
) ([]notification.Notification, error) {
	i.lock.RLock()
	defer i.lock.RUnlock()
	notifications := make([]notification.Notification, 0, len(i.entries))
	for ix := len(i.entries) - 1; ix >= 0; ix-- {
		if i.entries[ix].OwnerID == ownerID {
			notifications = append(notifications, i.entries[ix])
		}
	}
	return notifications, nil
}

func (i *Inbox) MarkRead(
	ctx context.Context,
	ownerID appointment.UserID,
	id notification.ID,
) (notification.Notification, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	ix, ok := i.byID[id]
	if !ok || i.entries[ix].OwnerID != ownerID {
		return notification.Notification{}, notification.ErrNotificationDoesNotExist
	}
	i.entries[ix].IsRead = true
	return i.entries[ix], nil
}

func (i *Inbox) reindex() {
	for ix, n := range i.entries {
		i.byID[n.ID] = ix
	}
}
