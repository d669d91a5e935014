package appointment

import (
	"context"
	"sync"
)

type TestRepository struct {
	CreateError   error
	ReadError     error
	UpdateError   error
	DeleteError   error
	Appointments  []Appointment
	CreatedWith   []CreateInput
	ReadWith      []ReadOptions
	UpdatedWith   []UpdateInput
	DeletedIDs    []ID
	GetByIDResult Appointment
	GetByIDError  error
	lock          sync.Mutex
}

func NewTestRepository() *TestRepository {
	return &TestRepository{}
}

func (r *TestRepository) Create(ctx context.Context, input CreateInput) (a Appointment, err error) {
	if r.CreateError != nil {
		return a, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CreatedWith = append(r.CreatedWith, input)
	a = Appointment{
		ID:              input.ID,
		OwnerID:         input.OwnerID,
		Title:           input.Title,
		Description:     input.Description,
		StartAt:         input.StartAt,
		EndAt:           input.EndAt,
		Priority:        input.Priority,
		Status:          StatusPending,
		ReminderMinutes: input.ReminderMinutes,
		LastModified:    input.CreatedAt,
	}
	r.Appointments = append(r.Appointments, a)
	return a, nil
}

func (r *TestRepository) GetByID(ctx context.Context, id ID) (Appointment, error) {
	if r.GetByIDError != nil {
		return Appointment{}, r.GetByIDError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Appointments {
		if a.ID == id {
			return a, nil
		}
	}
	if r.GetByIDResult.ID == id {
		return r.GetByIDResult, nil
	}
	return Appointment{}, ErrAppointmentDoesNotExist
}

func (r *TestRepository) Read(ctx context.Context, options ReadOptions) ([]Appointment, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	appointments := make([]Appointment, 0, len(r.Appointments))
	for _, a := range r.Appointments {
		if options.OwnerEquals.IsPresent && a.OwnerID != options.OwnerEquals.Value {
			continue
		}
		if options.StatusEquals.IsPresent && a.Status != options.StatusEquals.Value {
			continue
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

func (r *TestRepository) Update(ctx context.Context, input UpdateInput) (Appointment, error) {
	if r.UpdateError != nil {
		return Appointment{}, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UpdatedWith = append(r.UpdatedWith, input)
	for ix := range r.Appointments {
		if r.Appointments[ix].ID != input.ID {
			continue
		}
		a := &r.Appointments[ix]
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
		return *a, nil
	}
	return Appointment{}, ErrAppointmentDoesNotExist
}

func (r *TestRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.DeletedIDs = append(r.DeletedIDs, id)
	for ix, a := range r.Appointments {
		if a.ID == id {
			r.Appointments = append(r.Appointments[:ix], r.Appointments[ix+1:]...)
			return nil
		}
	}
	return ErrAppointmentDoesNotExist
}

type TestIdentityGenerator struct {
	NextID ID
}

func NewTestIdentityGenerator(next ID) *TestIdentityGenerator {
	return &TestIdentityGenerator{NextID: next}
}

func (g *TestIdentityGenerator) GenerateID() ID {
	return g.NextID
}
