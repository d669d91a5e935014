package dispatchnotification

import (
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func reminderNotification(id notification.ID) notification.Notification {
	return notification.Notification{
		ID:        id,
		OwnerID:   "user-1",
		Title:     "Dentist",
		Message:   "Dentist starts in 15 minutes!",
		Type:      notification.TypeReminder,
		CreatedAt: Now,
	}
}

func TestNotificationReachesInboxToastAndPublisher(t *testing.T) {
	log := logging.NewFakeLogger()
	inbox := notification.NewTestInbox()
	broadcaster := notification.NewTestToastBroadcaster()
	publisher := notification.NewTestEventPublisher()
	service := New(log, inbox, broadcaster, publisher)

	_, err := service.Run(context.Background(), Input{Notification: reminderNotification("n-1")})

	require.NoError(t, err)
	require.Len(t, inbox.Notifications, 1)
	require.Len(t, publisher.Published, 1)

	toasts := broadcaster.PublishedToasts()
	require.Len(t, toasts, 1)
	require.Equal(t, "Reminder: Dentist", toasts[0].Message)
	require.Equal(t, notification.ToastInfo, toasts[0].Kind)
	require.Equal(t, notification.ToastDisplayWindow, toasts[0].DisplayFor)
}

func TestDuplicateNotificationIsNotAddedTwice(t *testing.T) {
	log := logging.NewFakeLogger()
	inbox := notification.NewTestInbox()
	broadcaster := notification.NewTestToastBroadcaster()
	service := New(log, inbox, broadcaster, nil)

	_, err := service.Run(context.Background(), Input{Notification: reminderNotification("n-1")})
	require.NoError(t, err)
	_, err = service.Run(context.Background(), Input{Notification: reminderNotification("n-1")})
	require.NoError(t, err)

	require.Len(t, inbox.Notifications, 1)
}

func TestInboxErrorAbortsDispatch(t *testing.T) {
	log := logging.NewFakeLogger()
	inbox := notification.NewTestInbox()
	inbox.AddError = errors.New("inbox full")
	broadcaster := notification.NewTestToastBroadcaster()
	service := New(log, inbox, broadcaster, nil)

	_, err := service.Run(context.Background(), Input{Notification: reminderNotification("n-1")})

	require.Error(t, err)
	require.Empty(t, broadcaster.PublishedToasts())
}

func TestPublisherErrorIsLoggedNotReturned(t *testing.T) {
	log := logging.NewFakeLogger()
	inbox := notification.NewTestInbox()
	broadcaster := notification.NewTestToastBroadcaster()
	publisher := notification.NewTestEventPublisher()
	publisher.Error = errors.New("broker down")
	service := New(log, inbox, broadcaster, publisher)

	_, err := service.Run(context.Background(), Input{Notification: reminderNotification("n-1")})

	require.NoError(t, err)
	require.Len(t, inbox.Notifications, 1)
	require.Len(t, broadcaster.PublishedToasts(), 1)

	logged := false
	for _, record := range log.LoggedRecords() {
		if record.Level == logging.ERROR {
			logged = true
		}
	}
	require.True(t, logged)
}
