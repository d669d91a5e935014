package response

import (
	"apptrack/internal/core/domain/notification"
	"time"
)

type Notification struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

func (n *Notification) FromDomainType(dn notification.Notification) {
	n.ID = string(dn.ID)
	n.OwnerID = string(dn.OwnerID)
	n.Title = dn.Title
	n.Message = dn.Message
	n.Type = dn.Type.String()
	n.CreatedAt = dn.CreatedAt
	n.IsRead = dn.IsRead
}
