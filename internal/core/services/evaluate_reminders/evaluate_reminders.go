package evaluatereminders

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/services"
	dispatchnotification "apptrack/internal/core/services/dispatch_notification"
	"context"
	"fmt"
	"sync"
	"time"
)

type Input struct{}

type Result struct {
	FiredIDs []appointment.ID
}

// firedKey identifies one (appointment, firing instant) pair. Keying on the
// start time and offset as well as the id means a rescheduled appointment
// becomes eligible to fire again.
type firedKey struct {
	appointmentID   appointment.ID
	startAt         time.Time
	reminderMinutes int
}

type service struct {
	log             logging.Logger
	appointmentRepo appointment.Repository
	dispatchService services.Service[dispatchnotification.Input, dispatchnotification.Result]
	identityGen     appointment.IdentityGenerator
	now             func() time.Time
	firedLock       sync.Mutex
	fired           map[firedKey]struct{}
}

func New(
	log logging.Logger,
	appointmentRepo appointment.Repository,
	dispatchService services.Service[dispatchnotification.Input, dispatchnotification.Result],
	identityGen appointment.IdentityGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if appointmentRepo == nil {
		panic(e.NewNilArgumentError("appointmentRepo"))
	}
	if dispatchService == nil {
		panic(e.NewNilArgumentError("dispatchService"))
	}
	if identityGen == nil {
		panic(e.NewNilArgumentError("identityGen"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		appointmentRepo: appointmentRepo,
		dispatchService: dispatchService,
		identityGen:     identityGen,
		now:             now,
		fired:           make(map[firedKey]struct{}),
	}
}

// Run scans the pending appointments once and dispatches a reminder for each
// one whose reminder offset matches the current minute. A record that fails
// validation is skipped so one corrupt appointment cannot suppress reminders
// for the rest.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	appointments, err := s.appointmentRepo.Read(
		ctx,
		appointment.ReadOptions{
			StatusEquals: c.NewOptional(appointment.StatusPending, true),
			OrderBy:      appointment.OrderByStartAtAsc,
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	for _, a := range appointments {
		if !s.shouldFire(ctx, a, now) {
			continue
		}
		if !s.markFired(a) {
			continue
		}
		s.dispatch(ctx, a, now)
		result.FiredIDs = append(result.FiredIDs, a.ID)
	}
	return result, nil
}

func (s *service) shouldFire(ctx context.Context, a appointment.Appointment, now time.Time) bool {
	if err := a.Validate(); err != nil {
		s.log.Warning(
			ctx,
			"Skipping invalid appointment record during reminder scan.",
			logging.Entry("appointmentID", a.ID),
			logging.Entry("err", err),
		)
		return false
	}
	if a.Status != appointment.StatusPending {
		return false
	}
	if !a.StartAt.After(now) {
		return false
	}
	return a.MinutesUntilStart(now) == a.ReminderMinutes
}

// markFired records the firing and reports whether it is the first one for
// this (appointment, firing instant) pair.
func (s *service) markFired(a appointment.Appointment) bool {
	key := firedKey{
		appointmentID:   a.ID,
		startAt:         a.StartAt,
		reminderMinutes: a.ReminderMinutes,
	}
	s.firedLock.Lock()
	defer s.firedLock.Unlock()
	if _, ok := s.fired[key]; ok {
		return false
	}
	s.fired[key] = struct{}{}
	return true
}

func (s *service) dispatch(ctx context.Context, a appointment.Appointment, now time.Time) {
	n := notification.Notification{
		ID:        notification.ID(s.identityGen.GenerateID()),
		OwnerID:   a.OwnerID,
		Title:     a.Title,
		Message:   fmt.Sprintf("%s starts in %d minutes!", a.Title, a.ReminderMinutes),
		Type:      notification.TypeReminder,
		CreatedAt: now,
	}
	_, err := s.dispatchService.Run(ctx, dispatchnotification.Input{Notification: n})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("appointmentID", a.ID))
		return
	}
	s.log.Info(
		ctx,
		"Reminder fired.",
		logging.Entry("appointmentID", a.ID),
		logging.Entry("reminderMinutes", a.ReminderMinutes),
	)
}
