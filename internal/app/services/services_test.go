package services

import (
	"apptrack/internal/app/deps"
	"apptrack/internal/config"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/core/domain/quickadd"
	"apptrack/internal/core/domain/ratelimiter"
	createappointment "apptrack/internal/core/services/create_appointment"
	evaluatereminders "apptrack/internal/core/services/evaluate_reminders"
	"apptrack/internal/implementations/appointmentstore"
	"apptrack/internal/implementations/identity"
	"apptrack/internal/implementations/notificationinbox"
	"apptrack/internal/implementations/toastbroadcaster"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createDeps() *deps.Deps {
	return &deps.Deps{
		Config:                &config.Config{},
		Logger:                logging.NewFakeLogger(),
		Now:                   func() time.Time { return Now },
		AppointmentRepository: appointmentstore.New(),
		IdentityGenerator:     identity.NewUUID(),
		Inbox:                 notificationinbox.New(notificationinbox.DefaultCapacity),
		ToastBroadcaster:      toastbroadcaster.New(),
		RateLimiter:           ratelimiter.NewFakeRateLimiter(true),
		Oracle:                quickadd.NewTestOracle(),
	}
}

// An appointment created through the service graph must be visible to the
// reminder evaluation running in the same graph. The two sides share the
// in-memory store, so they have to live in one process.
func TestCreatedAppointmentFiresThroughSharedWiring(t *testing.T) {
	services := InitServices(createDeps())

	created, err := services.CreateAppointment.Run(
		context.Background(),
		createappointment.Input{
			OwnerID:         "user-1",
			Title:           "Dentist",
			StartAt:         Now.Add(15 * time.Minute),
			ReminderMinutes: 15,
		},
	)
	require.NoError(t, err)

	result, err := services.EvaluateReminders.Run(context.Background(), evaluatereminders.Input{})

	require.NoError(t, err)
	require.Equal(t, 1, len(result.FiredIDs))
	require.Equal(t, created.Appointment.ID, result.FiredIDs[0])
}

// A second graph built the same way must not see the first graph's
// appointments; each InitServices call owns a private store.
func TestSeparateWiringGraphsDoNotShareTheStore(t *testing.T) {
	writerServices := InitServices(createDeps())
	scannerServices := InitServices(createDeps())

	_, err := writerServices.CreateAppointment.Run(
		context.Background(),
		createappointment.Input{
			OwnerID:         "user-1",
			Title:           "Dentist",
			StartAt:         Now.Add(15 * time.Minute),
			ReminderMinutes: 15,
		},
	)
	require.NoError(t, err)

	result, err := scannerServices.EvaluateReminders.Run(
		context.Background(),
		evaluatereminders.Input{},
	)

	require.NoError(t, err)
	require.Empty(t, result.FiredIDs)
}

func TestFiredReminderLandsInSharedInbox(t *testing.T) {
	d := createDeps()
	services := InitServices(d)

	created, err := services.CreateAppointment.Run(
		context.Background(),
		createappointment.Input{
			OwnerID:         "user-1",
			Title:           "Dentist",
			StartAt:         Now.Add(15 * time.Minute),
			ReminderMinutes: 15,
		},
	)
	require.NoError(t, err)

	_, err = services.EvaluateReminders.Run(context.Background(), evaluatereminders.Input{})
	require.NoError(t, err)

	notifications, err := d.Inbox.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, len(notifications))
	require.Equal(t, notification.TypeReminder, notifications[0].Type)
	require.Equal(t, created.Appointment.Title, notifications[0].Title)
}
