package deleteappointment

import (
	"apptrack/internal/core/domain/appointment"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func setupRepo() *appointment.TestRepository {
	repo := appointment.NewTestRepository()
	repo.Appointments = []appointment.Appointment{
		{
			ID:              "a-1",
			OwnerID:         "user-1",
			Title:           "Dentist",
			StartAt:         Now.Add(24 * time.Hour),
			EndAt:           Now.Add(25 * time.Hour),
			Priority:        appointment.PriorityMedium,
			Status:          appointment.StatusPending,
			ReminderMinutes: 15,
		},
	}
	return repo
}

func TestAppointmentDeleted(t *testing.T) {
	repo := setupRepo()
	broadcaster := notification.NewTestToastBroadcaster()
	service := New(logging.NewFakeLogger(), repo, broadcaster)

	_, err := service.Run(context.Background(), Input{ID: "a-1", OwnerID: "user-1"})

	require.NoError(t, err)
	require.Equal(t, []appointment.ID{"a-1"}, repo.DeletedIDs)

	toasts := broadcaster.PublishedToasts()
	require.Equal(t, 1, len(toasts))
	require.Equal(t, notification.ToastError, toasts[0].Kind)
	require.Equal(t, "Appointment deleted", toasts[0].Message)
	require.Equal(t, appointment.UserID("user-1"), toasts[0].OwnerID)
}

func TestWrongOwnerCannotDelete(t *testing.T) {
	repo := setupRepo()
	broadcaster := notification.NewTestToastBroadcaster()
	service := New(logging.NewFakeLogger(), repo, broadcaster)

	_, err := service.Run(context.Background(), Input{ID: "a-1", OwnerID: "user-2"})

	require.ErrorIs(t, err, appointment.ErrAppointmentDoesNotExist)
	require.Empty(t, repo.DeletedIDs)
	require.Empty(t, broadcaster.PublishedToasts())
}

func TestMissingAppointmentCannotBeDeleted(t *testing.T) {
	repo := appointment.NewTestRepository()
	broadcaster := notification.NewTestToastBroadcaster()
	service := New(logging.NewFakeLogger(), repo, broadcaster)

	_, err := service.Run(context.Background(), Input{ID: "a-404", OwnerID: "user-1"})

	require.ErrorIs(t, err, appointment.ErrAppointmentDoesNotExist)
	require.Empty(t, broadcaster.PublishedToasts())
}
