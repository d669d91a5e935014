package marknotificationread

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	"context"
)

type Input struct {
	ID      notification.ID
	OwnerID appointment.UserID
}

type Result struct {
	Notification notification.Notification
}

type service struct {
	log   logging.Logger
	inbox notification.Inbox
}

func New(log logging.Logger, inbox notification.Inbox) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if inbox == nil {
		panic(e.NewNilArgumentError("inbox"))
	}
	return &service{log: log, inbox: inbox}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	marked, err := s.inbox.MarkRead(ctx, input.OwnerID, input.ID)
	if err != nil {
		return result, err
	}
	s.log.Debug(ctx, "Notification marked read.", logging.Entry("notificationID", input.ID))
	return Result{Notification: marked}, nil
}
