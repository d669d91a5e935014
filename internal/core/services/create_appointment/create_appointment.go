package createappointment

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	"context"
	"time"
)

type Input struct {
	OwnerID         appointment.UserID
	Title           string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	Priority        appointment.Priority
	ReminderMinutes int
}

type Result struct {
	Appointment appointment.Appointment
}

type service struct {
	log             logging.Logger
	appointmentRepo appointment.Repository
	identityGen     appointment.IdentityGenerator
	broadcaster     notification.ToastBroadcaster
	now             func() time.Time
}

func New(
	log logging.Logger,
	appointmentRepo appointment.Repository,
	identityGen appointment.IdentityGenerator,
	broadcaster notification.ToastBroadcaster,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if appointmentRepo == nil {
		panic(e.NewNilArgumentError("appointmentRepo"))
	}
	if identityGen == nil {
		panic(e.NewNilArgumentError("identityGen"))
	}
	if broadcaster == nil {
		panic(e.NewNilArgumentError("broadcaster"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		appointmentRepo: appointmentRepo,
		identityGen:     identityGen,
		broadcaster:     broadcaster,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := validateInput(input); err != nil {
		return result, err
	}

	priority := input.Priority
	if priority == appointment.PriorityUnknown {
		priority = appointment.PriorityMedium
	}
	endAt := input.EndAt
	if endAt.IsZero() {
		endAt = input.StartAt.Add(time.Hour)
	}

	created, err := s.appointmentRepo.Create(
		ctx,
		appointment.CreateInput{
			ID:              s.identityGen.GenerateID(),
			OwnerID:         input.OwnerID,
			Title:           input.Title,
			Description:     input.Description,
			StartAt:         input.StartAt,
			EndAt:           endAt,
			Priority:        priority,
			ReminderMinutes: input.ReminderMinutes,
			CreatedAt:       s.now(),
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("ownerID", input.OwnerID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Appointment created.",
		logging.Entry("appointmentID", created.ID),
		logging.Entry("ownerID", created.OwnerID),
	)
	s.broadcaster.Publish(ctx, notification.NewToast(
		notification.ID(created.ID),
		created.OwnerID,
		notification.ToastSuccess,
		"Appointment created!",
	))
	return Result{Appointment: created}, nil
}

func validateInput(input Input) error {
	if input.OwnerID == "" {
		return appointment.ErrOwnerIsEmpty
	}
	if input.Title == "" {
		return appointment.ErrTitleIsEmpty
	}
	if input.StartAt.IsZero() {
		return appointment.ErrStartTimeNotSet
	}
	if !input.EndAt.IsZero() && input.EndAt.Before(input.StartAt) {
		return appointment.ErrEndBeforeStart
	}
	if input.ReminderMinutes < 0 {
		return appointment.ErrNegativeReminderMinutes
	}
	return nil
}
