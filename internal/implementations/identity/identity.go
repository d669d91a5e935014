package identity

import (
	"apptrack/internal/core/domain/appointment"

	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateID() appointment.ID {
	return appointment.ID(uuid.New().String())
}
