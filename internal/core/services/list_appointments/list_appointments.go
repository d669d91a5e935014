package listappointments

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/services"
	"context"
)

type Input struct {
	OwnerID      appointment.UserID
	StatusEquals c.Optional[appointment.Status]
}

type Result struct {
	Appointments []appointment.Appointment
}

type service struct {
	log             logging.Logger
	appointmentRepo appointment.Repository
}

func New(
	log logging.Logger,
	appointmentRepo appointment.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if appointmentRepo == nil {
		panic(e.NewNilArgumentError("appointmentRepo"))
	}
	return &service{log: log, appointmentRepo: appointmentRepo}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.OwnerID == "" {
		return result, appointment.ErrOwnerIsEmpty
	}
	appointments, err := s.appointmentRepo.Read(
		ctx,
		appointment.ReadOptions{
			OwnerEquals:  c.NewOptional(input.OwnerID, true),
			StatusEquals: input.StatusEquals,
			OrderBy:      appointment.OrderByStartAtAsc,
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("ownerID", input.OwnerID))
		return result, err
	}
	return Result{Appointments: appointments}, nil
}
