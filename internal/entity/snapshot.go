package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Snapshot is the canonical in-memory dashboard state for one user: the result
// of a single synchronize pass, committed atomically as a whole. Collections
// keep fetch order (most recently created first) for stable default display.
type Snapshot struct {
	Clients       []Client
	Bills         []TrackedBill
	Notifications []Notification

	// Generation is the synchronize invocation that produced this snapshot.
	// It only increases; a stale result never replaces a newer one.
	Generation uint64
	SyncedAt   time.Time
}

func (s Snapshot) UnreadCount() int {
	var n int

	for _, v := range s.Notifications {
		if !v.Read {
			n++
		}
	}

	return n
}

// Notification returns the notification with the given id, or nil.
func (s Snapshot) Notification(id uuid.UUID) *Notification {
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			return &s.Notifications[i]
		}
	}

	return nil
}
