package notification

import (
	"apptrack/internal/core/domain/appointment"
	"context"
	"sync"
)

type TestInbox struct {
	AddError      error
	ListError     error
	MarkReadError error
	Notifications []Notification
	lock          sync.Mutex
}

func NewTestInbox() *TestInbox {
	return &TestInbox{}
}

func (i *TestInbox) Add(ctx context.Context, n Notification) error {
	if i.AddError != nil {
		return i.AddError
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	for _, existing := range i.Notifications {
		if existing.ID == n.ID {
			return nil
		}
	}
	i.Notifications = append(i.Notifications, n)
	return nil
}

func (i *TestInbox) List(ctx context.Context, ownerID appointment.UserID) ([]Notification, error) {
	if i.ListError != nil {
		return nil, i.ListError
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	notifications := make([]Notification, 0, len(i.Notifications))
	for _, n := range i.Notifications {
		if n.OwnerID == ownerID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (i *TestInbox) MarkRead(ctx context.Context, ownerID appointment.UserID, id ID) (Notification, error) {
	if i.MarkReadError != nil {
		return Notification{}, i.MarkReadError
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	for ix := range i.Notifications {
		if i.Notifications[ix].ID == id && i.Notifications[ix].OwnerID == ownerID {
			i.Notifications[ix].IsRead = true
			return i.Notifications[ix], nil
		}
	}
	return Notification{}, ErrNotificationDoesNotExist
}

type TestToastBroadcaster struct {
	Published []Toast
	lock      sync.Mutex
}

func NewTestToastBroadcaster() *TestToastBroadcaster {
	return &TestToastBroadcaster{}
}

func (b *TestToastBroadcaster) Publish(ctx context.Context, toast Toast) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.Published = append(b.Published, toast)
}

func (b *TestToastBroadcaster) Subscribe(fn func(toast Toast)) Unsubscribe {
	return func() {}
}

func (b *TestToastBroadcaster) PublishedToasts() []Toast {
	b.lock.Lock()
	defer b.lock.Unlock()
	toasts := make([]Toast, len(b.Published))
	copy(toasts, b.Published)
	return toasts
}

type TestEventPublisher struct {
	Error     error
	Published []Notification
	lock      sync.Mutex
}

func NewTestEventPublisher() *TestEventPublisher {
	return &TestEventPublisher{}
}

func (p *TestEventPublisher) Publish(ctx context.Context, n Notification) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, n)
	return nil
}
