package notification

import (
	"apptrack/internal/core/domain/appointment"
	"context"
	"time"
)

// ToastDisplayWindow is how long a toast stays visible once delivered.
// Each toast expires on its own timer.
const ToastDisplayWindow = 3 * time.Second

type ToastKind struct {
	v string
}

func (k ToastKind) String() string {
	return k.v
}

var (
	ToastSuccess = ToastKind{v: "success"}
	ToastError   = ToastKind{v: "error"}
	ToastInfo    = ToastKind{v: "info"}
)

type Toast struct {
	ID         ID
	OwnerID    appointment.UserID
	Kind       ToastKind
	Message    string
	DisplayFor time.Duration
}

func NewToast(id ID, ownerID appointment.UserID, kind ToastKind, message string) Toast {
	return Toast{
		ID:         id,
		OwnerID:    ownerID,
		Kind:       kind,
		Message:    message,
		DisplayFor: ToastDisplayWindow,
	}
}

// Unsubscribe removes a toast subscriber registered with Subscribe.
// Calling it more than once is harmless.
type Unsubscribe func()

// ToastBroadcaster fans a toast out to every active subscriber. Delivery is
// fire and forget: a toast published with no subscribers is dropped, never
// queued, and publishing must not block on slow subscribers.
type ToastBroadcaster interface {
	Publish(ctx context.Context, toast Toast)
	Subscribe(fn func(toast Toast)) Unsubscribe
}
