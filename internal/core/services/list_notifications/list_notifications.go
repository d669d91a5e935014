package listnotifications

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	"context"
)

type Input struct {
	OwnerID appointment.UserID
}

type Result struct {
	Notifications []notification.Notification
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
	if input.OwnerID == "" {
		return result, appointment.ErrOwnerIsEmpty
	}
	notifications, err := s.inbox.List(ctx, input.OwnerID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("ownerID", input.OwnerID))
		return result, err
	}
	return Result{Notifications: notifications}, nil
}
