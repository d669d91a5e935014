package appointmentstore

import (
	"apptrack/internal/core/domain/appointment"
	"context"
	"sort"
	"sync"
)

// Store is the in-memory repository view of the appointment collection.
// Reads copy the records out so an evaluation tick never observes a snapshot
// older than the tick it runs in.
type Store struct {
	lock         sync.RWMutex
	appointments map[appointment.ID]appointment.Appointment
}

func New() *Store {
	return &Store{appointments: make(map[appointment.ID]appointment.Appointment)}
}

func (s *Store) Create(
	ctx context.Context,
	input appointment.CreateInput,
) (appointment.Appointment, error) {
	a := appointment.Appointment{
		ID:              input.ID,
		OwnerID:         input.OwnerID,
		Title:           input.Title,
		Description:     input.Description,
		StartAt:         input.StartAt,
		EndAt:           input.EndAt,
		Priority:        input.Priority,
		Status:          appointment.StatusPending,
		ReminderMinutes: input.ReminderMinutes,
		LastModified:    input.CreatedAt,
	}
	if err := a.Validate(); err != nil {
		return appointment.Appointment{}, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.appointments[a.ID] = a
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id appointment.ID) (appointment.Appointment, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return appointment.Appointment{}, appointment.ErrAppointmentDoesNotExist
	}
	return a, nil
}

func (s *Store) Read(
	ctx context.Context,
	options appointment.ReadOptions,
) ([]appointment.Appointment, error) {
	s.lock.RLock()
	appointments := make([]appointment.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if options.OwnerEquals.IsPresent && a.OwnerID != options.OwnerEquals.Value {
			continue
		}
		if options.StatusEquals.IsPresent && a.Status != options.StatusEquals.Value {
			continue
		}
		appointments = append(appointments, a)
	}
	s.lock.RUnlock()

	switch options.OrderBy {
	case appointment.OrderByStartAtAsc:
		sort.Slice(appointments, func(i, j int) bool {
			if appointments[i].StartAt.Equal(appointments[j].StartAt) {
				return appointments[i].ID < appointments[j].ID
			}
			return appointments[i].StartAt.Before(appointments[j].StartAt)
		})
	default:
		sort.Slice(appointments, func(i, j int) bool {
			return appointments[i].ID < appointments[j].ID
		})
	}
	return appointments, nil
}

func (s *Store) Update(
	ctx context.Context,
	input appointment.UpdateInput,
) (appointment.Appointment, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	a, ok := s.appointments[input.ID]
	if !ok {
		return appointment.Appointment{}, appointment.ErrAppointmentDoesNotExist
	}
	if input.Title.IsPresent {
		a.Title = input.Title.Value
	}
	if input.Description.IsPresent {
		a.Description = input.Description.Value
	}
	if input.StartAt.IsPresent {
		a.StartAt = input.StartAt.Value
	}
	if input.EndAt.IsPresent {
		a.EndAt = input.EndAt.Value
	}
	if input.Priority.IsPresent {
		a.Priority = input.Priority.Value
	}
	if input.Status.IsPresent {
		a.Status = input.Status.Value
	}
	if input.ReminderMinutes.IsPresent {
		a.ReminderMinutes = input.ReminderMinutes.Value
	}
	a.LastModified = input.ModifiedAt

	if err := a.Validate(); err != nil {
		return appointment.Appointment{}, err
	}
	s.appointments[a.ID] = a
	return a, nil
}

func (s *Store) Delete(ctx context.Context, id appointment.ID) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return appointment.ErrAppointmentDoesNotExist
	}
	delete(s.appointments, id)
	return nil
}
