package response

import (
	"apptrack/internal/core/domain/appointment"
	"time"
)

type Appointment struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	ReminderMinutes int       `json:"reminder_minutes"`
	LastModified    time.Time `json:"last_modified"`
}

func (a *Appointment) FromDomainType(da appointment.Appointment) {
	a.ID = string(da.ID)
	a.OwnerID = string(da.OwnerID)
	a.Title = da.Title
	a.Description = da.Description
	a.StartAt = da.StartAt
	a.EndAt = da.EndAt
	a.Priority = da.Priority.String()
	a.Status = da.Status.String()
	a.ReminderMinutes = da.ReminderMinutes
	a.LastModified = da.LastModified
}
