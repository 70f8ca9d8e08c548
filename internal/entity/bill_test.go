package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

func TestTrackedBill_EffectivePriority(t *testing.T) {
	t.Parallel()

	b := entity.TrackedBill{
		Bill: entity.Bill{Priority: entity.BillPriorityLow},
	}
	require.Equal(t, entity.BillPriorityLow, b.EffectivePriority())

	b.PriorityOverride = entity.BillPriorityCritical
	require.Equal(t, entity.BillPriorityCritical, b.EffectivePriority())
}

func TestSnapshot_UnreadCount(t *testing.T) {
	t.Parallel()

	snap := entity.Snapshot{
		Notifications: []entity.Notification{
			{Read: true},
			{Read: false},
			{Read: false},
		},
	}

	require.Equal(t, 2, snap.UnreadCount())
}
