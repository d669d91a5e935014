package parseappointment

import (
	"apptrack/internal/core/domain/appointment"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/quickadd"
	"apptrack/internal/core/services"
	"context"
	"errors"
	"fmt"
	"time"
)

type Input struct {
	OwnerID appointment.UserID
	Query   string
}

type Result struct {
	Draft quickadd.Draft
}

type service struct {
	log     logging.Logger
	oracle  quickadd.Oracle
	timeout time.Duration
	now     func() time.Time
}

func New(
	log logging.Logger,
	oracle quickadd.Oracle,
	timeout time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if oracle == nil {
		panic(e.NewNilArgumentError("oracle"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:     log,
		oracle:  oracle,
		timeout: timeout,
		now:     now,
	}
}

// Run asks the oracle to structure the free text, then validates the answer.
// Every failure mode, oracle unreachable, timeout, malformed output, failed
// validation, surfaces as ErrQueryParsing so the caller shows a single
// "couldn't understand" outcome and creates nothing. The call is never
// retried here.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	referenceTime := s.now()
	raw, err := s.oracle.Parse(ctx, input.Query, referenceTime)
	if err != nil {
		s.log.Warning(
			ctx,
			"Oracle could not parse the appointment text.",
			logging.Entry("ownerID", input.OwnerID),
			logging.Entry("err", err),
		)
		return result, fmt.Errorf("oracle failure: %v, %w", err, quickadd.ErrQueryParsing)
	}

	draft, err := quickadd.NormalizeDraft(raw)
	if err != nil {
		s.log.Warning(
			ctx,
			"Oracle output failed draft validation.",
			logging.Entry("ownerID", input.OwnerID),
			logging.Entry("err", err),
		)
		if !errors.Is(err, quickadd.ErrQueryParsing) {
			err = fmt.Errorf("%v, %w", err, quickadd.ErrQueryParsing)
		}
		return result, err
	}

	s.log.Info(
		ctx,
		"Appointment draft parsed from text.",
		logging.Entry("ownerID", input.OwnerID),
		logging.Entry("title", draft.Title),
	)
	return Result{Draft: draft}, nil
}
