package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusPending  ClientStatus = "pending"
)

func (s ClientStatus) String() string {
	return string(s)
}

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusPending:
		return true
	default:
		return false
	}
}

// Client is an organization tracked in the portal. Clients exist independently
// of any single user session and are attached to users through memberships.
type Client struct {
	ID           uuid.UUID
	Name         string
	ContactEmail string
	Phone        string
	Industry     string
	Address      string
	Status       ClientStatus
	CreatedAt    time.Time

	// TrackedBills is derived from client_bills on fetch, never stored.
	TrackedBills int
}
