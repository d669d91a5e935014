package services

import (
	"apptrack/internal/app/deps"
	drl "apptrack/internal/core/domain/ratelimiter"
	"apptrack/internal/core/services"
	cancelappointment "apptrack/internal/core/services/cancel_appointment"
	completeappointment "apptrack/internal/core/services/complete_appointment"
	createappointment "apptrack/internal/core/services/create_appointment"
	createappointmentbynlq "apptrack/internal/core/services/create_appointment_by_nlq"
	deleteappointment "apptrack/internal/core/services/delete_appointment"
	dispatchnotification "apptrack/internal/core/services/dispatch_notification"
	evaluatereminders "apptrack/internal/core/services/evaluate_reminders"
	listappointments "apptrack/internal/core/services/list_appointments"
	listnotifications "apptrack/internal/core/services/list_notifications"
	marknotificationread "apptrack/internal/core/services/mark_notification_read"
	parseappointment "apptrack/internal/core/services/parse_appointment"
	"apptrack/internal/core/services/ratelimiting"
	updateappointment "apptrack/internal/core/services/update_appointment"
)

type Services struct {
	CreateAppointment      services.Service[createappointment.Input, createappointment.Result]
	CreateAppointmentByNLQ services.Service[createappointmentbynlq.Input, createappointment.Result]
	UpdateAppointment      services.Service[updateappointment.Input, updateappointment.Result]
	DeleteAppointment      services.Service[deleteappointment.Input, deleteappointment.Result]
	CompleteAppointment    services.Service[completeappointment.Input, completeappointment.Result]
	CancelAppointment      services.Service[cancelappointment.Input, cancelappointment.Result]
	ListAppointments       services.Service[listappointments.Input, listappointments.Result]

	ListNotifications    services.Service[listnotifications.Input, listnotifications.Result]
	MarkNotificationRead services.Service[marknotificationread.Input, marknotificationread.Result]

	DispatchNotification services.Service[dispatchnotification.Input, dispatchnotification.Result]
	EvaluateReminders    services.Service[evaluatereminders.Input, evaluatereminders.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateAppointment = createappointment.New(
		deps.Logger,
		deps.AppointmentRepository,
		deps.IdentityGenerator,
		deps.ToastBroadcaster,
		deps.Now,
	)
	s.UpdateAppointment = updateappointment.New(
		deps.Logger,
		deps.AppointmentRepository,
		deps.ToastBroadcaster,
		deps.Now,
	)
	s.DeleteAppointment = deleteappointment.New(
		deps.Logger,
		deps.AppointmentRepository,
		deps.ToastBroadcaster,
	)
	s.CompleteAppointment = completeappointment.New(
		deps.Logger,
		deps.AppointmentRepository,
		deps.Now,
	)
	s.CancelAppointment = cancelappointment.New(
		deps.Logger,
		deps.AppointmentRepository,
		deps.Now,
	)
	s.ListAppointments = listappointments.New(
		deps.Logger,
		deps.AppointmentRepository,
	)

	parseService := parseappointment.New(
		deps.Logger,
		deps.Oracle,
		deps.Config.Gemini.Timeout,
		deps.Now,
	)
	s.CreateAppointmentByNLQ = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: deps.Config.QuickAddRateLimit.PerHour},
		ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Minute, Value: deps.Config.QuickAddRateLimit.PerMinute},
			createappointmentbynlq.New(
				deps.Logger,
				parseService,
				s.CreateAppointment,
			),
		),
	)

	s.ListNotifications = listnotifications.New(deps.Logger, deps.Inbox)
	s.MarkNotificationRead = marknotificationread.New(deps.Logger, deps.Inbox)

	s.DispatchNotification = dispatchnotification.New(
		deps.Logger,
		deps.Inbox,
		deps.ToastBroadcaster,
		deps.EventPublisher,
	)
	s.EvaluateReminders = evaluatereminders.New(
		deps.Logger,
		deps.AppointmentRepository,
		s.DispatchNotification,
		deps.IdentityGenerator,
		deps.Now,
	)

	return s
}
