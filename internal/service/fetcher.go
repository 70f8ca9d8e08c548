package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

// Synchronize stage names carried by FetchError.
const (
	StageMemberships   = "memberships"
	StageClients       = "clients"
	StageBills         = "bills"
	StageNotifications = "notifications"
)

// Fetcher runs the multi-hop relational join producing a dashboard snapshot.
// It has no local state; failures abort the pass without side effects.
type Fetcher struct {
	store Store
}

func NewFetcher(store Store) *Fetcher {
	return &Fetcher{store: store}
}

// Synchronize fetches a complete snapshot for one user. Stages run in strict
// order: memberships, clients, tracked bills, notifications. A user without
// memberships still gets notifications; those are independent of clients.
func (f *Fetcher) Synchronize(ctx context.Context, userID uuid.UUID) (entity.Snapshot, error) {
	var snap entity.Snapshot

	clientIDs, err := f.store.UserClientIDs(ctx, userID)
	if err != nil {
		return snap, &entity.FetchError{Stage: StageMemberships, Err: err}
	}

	if len(clientIDs) > 0 {
		snap.Clients, err = f.store.ClientsByIDs(ctx, clientIDs)
		if err != nil {
			return entity.Snapshot{}, &entity.FetchError{Stage: StageClients, Err: err}
		}

		bills, err := f.store.TrackedBillsByClientIDs(ctx, clientIDs)
		if err != nil {
			return entity.Snapshot{}, &entity.FetchError{Stage: StageBills, Err: err}
		}

		snap.Bills = dropDangling(bills)
	}

	snap.Notifications, err = f.store.RecentNotifications(ctx, userID, entity.RecentNotificationLimit)
	if err != nil {
		return entity.Snapshot{}, &entity.FetchError{Stage: StageNotifications, Err: err}
	}

	return snap, nil
}

// dropDangling excludes links whose bill reference did not resolve. That is a
// defensive filter, not an error: the link row may outlive its bill briefly
// during concurrent deletes.
func dropDangling(bills []entity.TrackedBill) []entity.TrackedBill {
	kept := make([]entity.TrackedBill, 0, len(bills))

	for _, b := range bills {
		if b.Bill.ID.IsNil() {
			continue
		}

		kept = append(kept, b)
	}

	return kept
}
