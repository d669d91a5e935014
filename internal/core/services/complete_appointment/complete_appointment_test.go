package completeappointment

import (
	"apptrack/internal/core/domain/appointment"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func setupRepo(status appointment.Status) *appointment.TestRepository {
	repo := appointment.NewTestRepository()
	repo.Appointments = []appointment.Appointment{
		{
			ID:              "a-1",
			OwnerID:         "user-1",
			Title:           "Dentist",
			StartAt:         Now.Add(24 * time.Hour),
			EndAt:           Now.Add(25 * time.Hour),
			Priority:        appointment.PriorityMedium,
			Status:          status,
			ReminderMinutes: 15,
		},
	}
	return repo
}

func createService(repo *appointment.TestRepository) services.Service[Input, Result] {
	return New(logging.NewFakeLogger(), repo, func() time.Time { return Now })
}

func TestPendingAppointmentCompleted(t *testing.T) {
	repo := setupRepo(appointment.StatusPending)
	service := createService(repo)

	result, err := service.Run(context.Background(), Input{ID: "a-1", OwnerID: "user-1"})

	require.NoError(t, err)
	require.Equal(t, appointment.StatusCompleted, result.Appointment.Status)
	require.True(t, Now.Equal(result.Appointment.LastModified))
}

func TestNonPendingAppointmentCannotBeCompleted(t *testing.T) {
	cases := []struct {
		id     string
		status appointment.Status
	}{
		{id: "completed", status: appointment.StatusCompleted},
		{id: "cancelled", status: appointment.StatusCancelled},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			repo := setupRepo(testcase.status)
			service := createService(repo)

			_, err := service.Run(context.Background(), Input{ID: "a-1", OwnerID: "user-1"})

			require.ErrorIs(t, err, appointment.ErrNotPending)
		})
	}
}

func TestWrongOwnerCannotComplete(t *testing.T) {
	repo := setupRepo(appointment.StatusPending)
	service := createService(repo)

	_, err := service.Run(context.Background(), Input{ID: "a-1", OwnerID: "user-2"})

	require.ErrorIs(t, err, appointment.ErrAppointmentDoesNotExist)
}
