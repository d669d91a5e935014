package app

import (
	"apptrack/internal/app/deps"
	"apptrack/internal/app/services"
	cancelappointment "apptrack/internal/http/handlers/appointments/cancel_appointment"
	completeappointment "apptrack/internal/http/handlers/appointments/complete_appointment"
	createappointment "apptrack/internal/http/handlers/appointments/create_appointment"
	createappointmentbynlq "apptrack/internal/http/handlers/appointments/create_appointment_by_nlq"
	deleteappointment "apptrack/internal/http/handlers/appointments/delete_appointment"
	listappointments "apptrack/internal/http/handlers/appointments/list_appointments"
	updateappointment "apptrack/internal/http/handlers/appointments/update_appointment"
	"apptrack/internal/http/handlers/notifications/events"
	listnotifications "apptrack/internal/http/handlers/notifications/list_notifications"
	marknotificationread "apptrack/internal/http/handlers/notifications/mark_notification_read"
	"apptrack/internal/http/handlers/owner"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	appointmentsRouter := chi.NewRouter()
	appointmentsRouter.Use(owner.SetOwnerToContext)
	appointmentsRouter.Method(http.MethodGet, "/", listappointments.New(s.ListAppointments))
	appointmentsRouter.Method(http.MethodPost, "/", createappointment.New(s.CreateAppointment))
	appointmentsRouter.Method(http.MethodPost, "/nlq", createappointmentbynlq.New(s.CreateAppointmentByNLQ))
	appointmentsRouter.Method(http.MethodPatch, "/{appointmentID}", updateappointment.New(s.UpdateAppointment))
	appointmentsRouter.Method(http.MethodDelete, "/{appointmentID}", deleteappointment.New(s.DeleteAppointment))
	appointmentsRouter.Method(
		http.MethodPut,
		"/{appointmentID}/completion",
		completeappointment.New(s.CompleteAppointment),
	)
	appointmentsRouter.Method(
		http.MethodPut,
		"/{appointmentID}/cancellation",
		cancelappointment.New(s.CancelAppointment),
	)

	notificationsRouter := chi.NewRouter()
	notificationsRouter.Use(owner.SetOwnerToContext)
	notificationsRouter.Method(http.MethodGet, "/", listnotifications.New(s.ListNotifications))
	notificationsRouter.Method(
		http.MethodPut,
		"/{notificationID}/read",
		marknotificationread.New(s.MarkNotificationRead),
	)
	notificationsRouter.Method(http.MethodGet, "/events", events.New(deps.Logger, deps.SseServer))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.HTTP.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/appointments", appointmentsRouter)
	router.Mount("/notifications", notificationsRouter)

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.HTTP.Address,
	}
}
