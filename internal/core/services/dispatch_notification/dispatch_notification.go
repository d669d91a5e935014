package dispatchnotification

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	"context"
	"fmt"
)

type Input struct {
	Notification notification.Notification
}

type Result struct{}

type service struct {
	log         logging.Logger
	inbox       notification.Inbox
	broadcaster notification.ToastBroadcaster
	publisher   notification.EventPublisher
}

// New wires the dispatcher. publisher may be nil when no downstream delivery
// pipeline is configured; inbox and broadcaster are mandatory.
func New(
	log logging.Logger,
	inbox notification.Inbox,
	broadcaster notification.ToastBroadcaster,
	publisher notification.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if inbox == nil {
		panic(e.NewNilArgumentError("inbox"))
	}
	if broadcaster == nil {
		panic(e.NewNilArgumentError("broadcaster"))
	}
	return &service{
		log:         log,
		inbox:       inbox,
		broadcaster: broadcaster,
		publisher:   publisher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	n := input.Notification
	if err := s.inbox.Add(ctx, n); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("notificationID", n.ID))
		return result, err
	}

	s.broadcaster.Publish(ctx, notification.NewToast(
		n.ID,
		n.OwnerID,
		notification.ToastInfo,
		fmt.Sprintf("Reminder: %s", n.Title),
	))

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, n); err != nil {
			// Delivery handoff is best effort, the inbox already has the event.
			logging.Error(ctx, s.log, err, logging.Entry("notificationID", n.ID))
		}
	}
	return result, nil
}
