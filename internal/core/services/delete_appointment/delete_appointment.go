package deleteappointment

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	"context"
)

type Input struct {
	ID      appointment.ID
	OwnerID appointment.UserID
}

type Result struct{}

type service struct {
	log             logging.Logger
	appointmentRepo appointment.Repository
	broadcaster     notification.ToastBroadcaster
}

func New(
	log logging.Logger,
	appointmentRepo appointment.Repository,
	broadcaster notification.ToastBroadcaster,
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
	return &service{
		log:             log,
		appointmentRepo: appointmentRepo,
		broadcaster:     broadcaster,
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

	if err := s.appointmentRepo.Delete(ctx, input.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("appointmentID", input.ID))
		return result, err
	}

	s.log.Info(ctx, "Appointment deleted.", logging.Entry("appointmentID", input.ID))
	s.broadcaster.Publish(ctx, notification.NewToast(
		notification.ID(input.ID),
		input.OwnerID,
		notification.ToastError,
		"Appointment deleted",
	))
	return result, nil
}
