package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// RecentNotificationLimit caps the notification fetch at a fixed recent-N.
// Known scalability limit: the dashboard never paginates past it.
const RecentNotificationLimit = 10

type NotificationType string

const (
	NotificationTypeUrgent NotificationType = "urgent"
	NotificationTypeUpdate NotificationType = "update"
	NotificationTypeInfo   NotificationType = "info"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeUrgent, NotificationTypeUpdate, NotificationTypeInfo:
		return true
	default:
		return false
	}
}

// Notification belongs to exactly one user. It is created by backend events;
// the portal mutates only the Read flag, scoped to the owning user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	BillID    uuid.NullUUID
	CreatedAt time.Time

	// Denormalized projection of the referenced bill, empty when BillID is null.
	BillNumber string
	BillTitle  string
}
