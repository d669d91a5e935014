package notification

import (
	"apptrack/internal/core/domain/appointment"
	"context"
)

// Inbox is the accumulating notification list behind the notification bell.
// Add is idempotent by notification ID so the same fired reminder can never
// appear twice.
type Inbox interface {
	Add(ctx context.Context, n Notification) error
	List(ctx context.Context, ownerID appointment.UserID) ([]Notification, error)
	MarkRead(ctx context.Context, ownerID appointment.UserID, id ID) (Notification, error)
}

// EventPublisher hands a fired notification over to an external delivery
// pipeline. Actual delivery (email, push) happens outside this process.
type EventPublisher interface {
	Publish(ctx context.Context, n Notification) error
}
