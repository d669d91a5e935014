package appointment

import (
	c "apptrack/internal/core/domain/common"
	"context"
	"time"
)

type CreateInput struct {
	ID              ID
	OwnerID         UserID
	Title           string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	Priority        Priority
	ReminderMinutes int
	CreatedAt       time.Time
}

type UpdateInput struct {
	ID              ID
	Title           c.Optional[string]
	Description     c.Optional[string]
	StartAt         c.Optional[time.Time]
	EndAt           c.Optional[time.Time]
	Priority        c.Optional[Priority]
	Status          c.Optional[Status]
	ReminderMinutes c.Optional[int]
	ModifiedAt      time.Time
}

type OrderBy struct {
	v string
}

var (
	OrderByIDAsc      = OrderBy{}
	OrderByStartAtAsc = OrderBy{v: "start_at_asc"}
)

type ReadOptions struct {
	OwnerEquals  c.Optional[UserID]
	StatusEquals c.Optional[Status]
	OrderBy      OrderBy
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Appointment, error)
	GetByID(ctx context.Context, id ID) (Appointment, error)
	Read(ctx context.Context, options ReadOptions) ([]Appointment, error)
	Update(ctx context.Context, input UpdateInput) (Appointment, error)
	Delete(ctx context.Context, id ID) error
}

type IdentityGenerator interface {
	GenerateID() ID
}
