package createappointmentbynlq

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/services"
	createappointment "apptrack/internal/core/services/create_appointment"
	parseappointment "apptrack/internal/core/services/parse_appointment"
	"context"
	"fmt"
)

type Input struct {
	OwnerID appointment.UserID
	Query   string
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("quickadd::%s", i.OwnerID)
}

type service struct {
	log           logging.Logger
	parseService  services.Service[parseappointment.Input, parseappointment.Result]
	createService services.Service[createappointment.Input, createappointment.Result]
}

func New(
	log logging.Logger,
	parseService services.Service[parseappointment.Input, parseappointment.Result],
	createService services.Service[createappointment.Input, createappointment.Result],
) services.Service[Input, createappointment.Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if parseService == nil {
		panic(e.NewNilArgumentError("parseService"))
	}
	if createService == nil {
		panic(e.NewNilArgumentError("createService"))
	}
	return &service{
		log:           log,
		parseService:  parseService,
		createService: createService,
	}
}

// Run turns free text into an appointment. A parse failure creates nothing;
// the caller surfaces it to the user for manual resubmission.
func (s *service) Run(ctx context.Context, input Input) (result createappointment.Result, err error) {
	parsed, err := s.parseService.Run(
		ctx,
		parseappointment.Input{OwnerID: input.OwnerID, Query: input.Query},
	)
	if err != nil {
		return result, err
	}

	draft := parsed.Draft
	result, err = s.createService.Run(
		ctx,
		createappointment.Input{
			OwnerID:         input.OwnerID,
			Title:           draft.Title,
			Description:     draft.Description,
			StartAt:         draft.StartAt,
			EndAt:           draft.EndAt,
			Priority:        draft.Priority,
			ReminderMinutes: draft.ReminderMinutes,
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("ownerID", input.OwnerID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Appointment created from natural language query.",
		logging.Entry("appointmentID", result.Appointment.ID),
		logging.Entry("ownerID", input.OwnerID),
	)
	return result, nil
}
