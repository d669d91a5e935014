package appointment

import (
	e "apptrack/internal/core/domain/errors"
	"time"
)

type ID string

type UserID string

type Appointment struct {
	ID              ID
	OwnerID         UserID
	Title           string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	Priority        Priority
	Status          Status
	ReminderMinutes int
	LastModified    time.Time
}

func (a *Appointment) Validate() error {
	if a.ID == "" {
		return e.NewInvalidStateError("appointment must have an id")
	}
	if a.OwnerID == "" {
		return e.NewInvalidStateError("appointment must have an owner")
	}
	if a.Title == "" {
		return e.NewInvalidStateError("appointment title must not be empty")
	}
	if a.StartAt.IsZero() {
		return e.NewInvalidStateError("appointment start time must be set")
	}
	if a.EndAt.Before(a.StartAt) {
		return e.NewInvalidStateError("appointment end time must not precede start time")
	}
	if a.ReminderMinutes < 0 {
		return e.NewInvalidStateError("reminder minutes must not be negative")
	}
	if a.Status == StatusUnknown {
		return e.NewInvalidStateError("appointment status must be set")
	}
	return nil
}

// MinutesUntilStart is the whole number of minutes between now and the
// appointment start, truncated towards zero for future starts.
func (a *Appointment) MinutesUntilStart(now time.Time) int {
	return int(a.StartAt.Sub(now) / time.Minute)
}
