package cancelappointment

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/services"
	"context"
	"time"
)

type Input struct {
	ID      appointment.ID
	OwnerID appointment.UserID
}

type Result struct {
	Appointment appointment.Appointment
}

type service struct {
	log             logging.Logger
	appointmentRepo appointment.Repository
	now             func() time.Time
}

func New(
	log logging.Logger,
	appointmentRepo appointment.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if appointmentRepo == nil {
		panic(e.NewNilArgumentError("appointmentRepo"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, appointmentRepo: appointmentRepo, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	existing, err := s.appointmentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return result, err
	}
	if existing.OwnerID != input.OwnerID {
		return result, appointment.ErrAppointmentDoesNotExist
	}
	if existing.Status != appointment.StatusPending {
		return result, appointment.ErrNotPending
	}

	updated, err := s.appointmentRepo.Update(
		ctx,
		appointment.UpdateInput{
			ID:         input.ID,
			Status:     c.NewOptional(appointment.StatusCancelled, true),
			ModifiedAt: s.now(),
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("appointmentID", input.ID))
		return result, err
	}

	s.log.Info(ctx, "Appointment cancelled.", logging.Entry("appointmentID", input.ID))
	return Result{Appointment: updated}, nil
}
