package updateappointment

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	"context"
	"time"
)

type Input struct {
	ID              appointment.ID
	OwnerID         appointment.UserID
	Title           c.Optional[string]
	Description     c.Optional[string]
	StartAt         c.Optional[time.Time]
	EndAt           c.Optional[time.Time]
	Priority        c.Optional[appointment.Priority]
	ReminderMinutes c.Optional[int]
}

type Result struct {
	Appointment appointment.Appointment
}

type service struct {
	log             logging.Logger
	appointmentRepo appointment.Repository
	broadcaster     notification.ToastBroadcaster
	now             func() time.Time
}

func New(
	log logging.Logger,
	appointmentRepo appointment.Repository,
	broadcaster notification.ToastBroadcaster,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if appointmentRepo == nil {
		panic(e.NewNilArgumentError("appointmentRepo"))
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
		broadcaster:     broadcaster,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	existing, err := s.appointmentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return result, err
	}
	if existing.OwnerID != input.OwnerID {
		return result, appointment.ErrAppointmentDoesNotExist
	}
	if err := validateInput(input, existing); err != nil {
		return result, err
	}

	updated, err := s.appointmentRepo.Update(
		ctx,
		appointment.UpdateInput{
			ID:              input.ID,
			Title:           input.Title,
			Description:     input.Description,
			StartAt:         input.StartAt,
			EndAt:           input.EndAt,
			Priority:        input.Priority,
			ReminderMinutes: input.ReminderMinutes,
			ModifiedAt:      s.now(),
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("appointmentID", input.ID))
		return result, err
	}

	s.log.Info(ctx, "Appointment updated.", logging.Entry("appointmentID", updated.ID))
	s.broadcaster.Publish(ctx, notification.NewToast(
		notification.ID(updated.ID),
		updated.OwnerID,
		notification.ToastSuccess,
		"Appointment updated!",
	))
	return Result{Appointment: updated}, nil
}

func validateInput(input Input, existing appointment.Appointment) error {
	if input.Title.IsPresent && input.Title.Value == "" {
		return appointment.ErrTitleIsEmpty
	}
	if input.ReminderMinutes.IsPresent && input.ReminderMinutes.Value < 0 {
		return appointment.ErrNegativeReminderMinutes
	}
	startAt := existing.StartAt
	if input.StartAt.IsPresent {
		if input.StartAt.Value.IsZero() {
			return appointment.ErrStartTimeNotSet
		}
		startAt = input.StartAt.Value
	}
	endAt := existing.EndAt
	if input.EndAt.IsPresent {
		endAt = input.EndAt.Value
	}
	if endAt.Before(startAt) {
		return appointment.ErrEndBeforeStart
	}
	return nil
}
