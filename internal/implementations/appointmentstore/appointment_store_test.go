package appointmentstore

import (
	"apptrack/internal/core/domain/appointment"
	c "apptrack/internal/core/domain/common"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createInput(id appointment.ID, owner appointment.UserID, startAt time.Time) appointment.CreateInput {
	return appointment.CreateInput{
		ID:              id,
		OwnerID:         owner,
		Title:           "Dentist",
		StartAt:         startAt,
		EndAt:           startAt.Add(time.Hour),
		Priority:        appointment.PriorityMedium,
		ReminderMinutes: 15,
		CreatedAt:       Now,
	}
}

func TestCreateAndGet(t *testing.T) {
	store := New()

	created, err := store.Create(context.Background(), createInput("a-1", "user-1", Now.Add(time.Hour)))
	require.NoError(t, err)
	require.Equal(t, appointment.StatusPending, created.Status)

	got, err := store.GetByID(context.Background(), "a-1")
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = store.GetByID(context.Background(), "a-404")
	require.ErrorIs(t, err, appointment.ErrAppointmentDoesNotExist)
}

func TestCreateRejectsInvalidRecord(t *testing.T) {
	store := New()
	input := createInput("a-1", "user-1", Now.Add(time.Hour))
	input.Title = ""

	_, err := store.Create(context.Background(), input)
	require.Error(t, err)
}

func TestReadFiltersAndOrders(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.Create(ctx, createInput("a-later", "user-1", Now.Add(3*time.Hour)))
	require.NoError(t, err)
	_, err = store.Create(ctx, createInput("a-sooner", "user-1", Now.Add(time.Hour)))
	require.NoError(t, err)
	_, err = store.Create(ctx, createInput("a-other", "user-2", Now.Add(2*time.Hour)))
	require.NoError(t, err)

	_, err = store.Update(ctx, appointment.UpdateInput{
		ID:         "a-later",
		Status:     c.NewOptional(appointment.StatusCancelled, true),
		ModifiedAt: Now,
	})
	require.NoError(t, err)

	all, err := store.Read(ctx, appointment.ReadOptions{OrderBy: appointment.OrderByStartAtAsc})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, appointment.ID("a-sooner"), all[0].ID)
	require.Equal(t, appointment.ID("a-other"), all[1].ID)
	require.Equal(t, appointment.ID("a-later"), all[2].ID)

	mine, err := store.Read(ctx, appointment.ReadOptions{
		OwnerEquals: c.NewOptional(appointment.UserID("user-1"), true),
		OrderBy:     appointment.OrderByStartAtAsc,
	})
	require.NoError(t, err)
	require.Len(t, mine, 2)

	pending, err := store.Read(ctx, appointment.ReadOptions{
		StatusEquals: c.NewOptional(appointment.StatusPending, true),
	})
	require.NoError(t, err)
	require.Len(t, pending, 2)
}

func TestUpdate(t *testing.T) {
	store := New()
	ctx := context.Background()
	_, err := store.Create(ctx, createInput("a-1", "user-1", Now.Add(time.Hour)))
	require.NoError(t, err)

	updated, err := store.Update(ctx, appointment.UpdateInput{
		ID:         "a-1",
		Title:      c.NewOptional("Dentist (moved)", true),
		StartAt:    c.NewOptional(Now.Add(2*time.Hour), true),
		EndAt:      c.NewOptional(Now.Add(3*time.Hour), true),
		ModifiedAt: Now.Add(time.Minute),
	})
	require.NoError(t, err)
	require.Equal(t, "Dentist (moved)", updated.Title)
	require.True(t, Now.Add(time.Minute).Equal(updated.LastModified))

	_, err = store.Update(ctx, appointment.UpdateInput{ID: "a-404", ModifiedAt: Now})
	require.ErrorIs(t, err, appointment.ErrAppointmentDoesNotExist)
}

func TestUpdateRejectsInvalidTransitionResult(t *testing.T) {
	store := New()
	ctx := context.Background()
	_, err := store.Create(ctx, createInput("a-1", "user-1", Now.Add(time.Hour)))
	require.NoError(t, err)

	// End before start must not be persisted.
	_, err = store.Update(ctx, appointment.UpdateInput{
		ID:         "a-1",
		EndAt:      c.NewOptional(Now, true),
		ModifiedAt: Now,
	})
	require.Error(t, err)

	got, err := store.GetByID(ctx, "a-1")
	require.NoError(t, err)
	require.True(t, Now.Add(2*time.Hour).Equal(got.EndAt))
}

func TestDelete(t *testing.T) {
	store := New()
	ctx := context.Background()
	_, err := store.Create(ctx, createInput("a-1", "user-1", Now.Add(time.Hour)))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "a-1"))
	require.ErrorIs(t, store.Delete(ctx, "a-1"), appointment.ErrAppointmentDoesNotExist)
}
