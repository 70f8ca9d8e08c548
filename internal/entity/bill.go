package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type BillStatus string

const (
	BillStatusIntroduced BillStatus = "introduced"
	BillStatusCommittee  BillStatus = "committee"
	BillStatusFloor      BillStatus = "floor"
	BillStatusPassed     BillStatus = "passed"
	BillStatusFailed     BillStatus = "failed"
	BillStatusSigned     BillStatus = "signed"
)

func (s BillStatus) String() string {
	return string(s)
}

func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusIntroduced, BillStatusCommittee, BillStatusFloor,
		BillStatusPassed, BillStatusFailed, BillStatusSigned:
		return true
	default:
		return false
	}
}

type BillPriority string

const (
	BillPriorityLow      BillPriority = "low"
	BillPriorityMedium   BillPriority = "medium"
	BillPriorityHigh     BillPriority = "high"
	BillPriorityCritical BillPriority = "critical"
)

func (p BillPriority) String() string {
	return string(p)
}

func (p BillPriority) IsValid() bool {
	switch p {
	case BillPriorityLow, BillPriorityMedium, BillPriorityHigh, BillPriorityCritical:
		return true
	default:
		return false
	}
}

type BillPosition string

const (
	BillPositionSupport BillPosition = "support"
	BillPositionOppose  BillPosition = "oppose"
	BillPositionMonitor BillPosition = "monitor"
)

func (p BillPosition) String() string {
	return string(p)
}

func (p BillPosition) IsValid() bool {
	switch p {
	case BillPositionSupport, BillPositionOppose, BillPositionMonitor:
		return true
	default:
		return false
	}
}

// Bill is shared legislative reference data. The portal never mutates a bill's
// intrinsic fields, only the client link carrying per-relationship metadata.
type Bill struct {
	ID         uuid.UUID
	Number     string
	Title      string
	Summary    string
	Status     BillStatus
	Priority   BillPriority
	Chamber    string
	Author     string
	LastAction string
	CreatedAt  time.Time
}

// BillLink associates a bill with a client. At most one link exists per
// (client, bill) pair; removing either side removes the link.
type BillLink struct {
	ClientID         uuid.UUID
	BillID           uuid.UUID
	Position         BillPosition
	TrackingReason   string
	PriorityOverride BillPriority // empty means no override
	CreatedAt        time.Time
}

// TrackedBill is a bill enriched with the link metadata of one client context,
// materialized fresh on every fetch.
type TrackedBill struct {
	Bill

	ClientID         uuid.UUID
	Position         BillPosition
	TrackingReason   string
	PriorityOverride BillPriority
	TrackedAt        time.Time
}

// EffectivePriority is the priority shown to users: the link override when
// present, the bill's own priority otherwise.
func (t TrackedBill) EffectivePriority() BillPriority {
	if t.PriorityOverride != "" {
		return t.PriorityOverride
	}

	return t.Priority
}
