package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
	"github.com/Rasamaha24/m5-advocate-portal/internal/mocks"
	"github.com/Rasamaha24/m5-advocate-portal/internal/service"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFetcher_Synchronize(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	userID := uuid.Must(uuid.NewV4())
	clientID := uuid.Must(uuid.NewV4())
	billID := uuid.Must(uuid.NewV4())

	clients := []entity.Client{{ID: clientID, Name: "Acme Health"}}
	bills := []entity.TrackedBill{{
		Bill:     entity.Bill{ID: billID, Number: "HB1"},
		ClientID: clientID,
		Position: entity.BillPositionSupport,
	}}
	notifications := []entity.Notification{{ID: uuid.Must(uuid.NewV4()), UserID: userID}}

	store.EXPECT().UserClientIDs(context.Background(), userID).Return([]uuid.UUID{clientID}, nil)
	store.EXPECT().ClientsByIDs(context.Background(), []uuid.UUID{clientID}).Return(clients, nil)
	store.EXPECT().TrackedBillsByClientIDs(context.Background(), []uuid.UUID{clientID}).Return(bills, nil)
	store.EXPECT().RecentNotifications(context.Background(), userID, entity.RecentNotificationLimit).
		Return(notifications, nil)

	snap, err := service.NewFetcher(store).Synchronize(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, clients, snap.Clients)
	require.Equal(t, bills, snap.Bills)
	require.Equal(t, notifications, snap.Notifications)
}

func TestFetcher_Synchronize_NoMemberships(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	userID := uuid.Must(uuid.NewV4())
	notifications := []entity.Notification{{ID: uuid.Must(uuid.NewV4()), UserID: userID}}

	// No client or bill fetch happens, but notifications still load.
	store.EXPECT().UserClientIDs(context.Background(), userID).Return(nil, nil)
	store.EXPECT().RecentNotifications(context.Background(), userID, entity.RecentNotificationLimit).
		Return(notifications, nil)

	snap, err := service.NewFetcher(store).Synchronize(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, snap.Clients)
	require.Empty(t, snap.Bills)
	require.Equal(t, notifications, snap.Notifications)
}

func TestFetcher_Synchronize_DropsDanglingLinks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	userID := uuid.Must(uuid.NewV4())
	clientID := uuid.Must(uuid.NewV4())
	kept := entity.TrackedBill{
		Bill:     entity.Bill{ID: uuid.Must(uuid.NewV4()), Number: "SB2"},
		ClientID: clientID,
	}
	dangling := entity.TrackedBill{ClientID: clientID}

	store.EXPECT().UserClientIDs(context.Background(), userID).Return([]uuid.UUID{clientID}, nil)
	store.EXPECT().ClientsByIDs(context.Background(), []uuid.UUID{clientID}).
		Return([]entity.Client{{ID: clientID}}, nil)
	store.EXPECT().TrackedBillsByClientIDs(context.Background(), []uuid.UUID{clientID}).
		Return([]entity.TrackedBill{dangling, kept}, nil)
	store.EXPECT().RecentNotifications(context.Background(), userID, entity.RecentNotificationLimit).
		Return(nil, nil)

	snap, err := service.NewFetcher(store).Synchronize(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []entity.TrackedBill{kept}, snap.Bills)
}

func TestFetcher_Synchronize_StageErrors(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())
	clientID := uuid.Must(uuid.NewV4())
	cause := errors.New("connection reset")

	tests := []struct {
		name  string
		setup func(store *mocks.MockStore)
		stage string
	}{
		{
			name: "memberships",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().UserClientIDs(context.Background(), userID).Return(nil, cause)
			},
			stage: "memberships",
		},
		{
			name: "clients",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().UserClientIDs(context.Background(), userID).Return([]uuid.UUID{clientID}, nil)
				store.EXPECT().ClientsByIDs(context.Background(), []uuid.UUID{clientID}).Return(nil, cause)
			},
			stage: "clients",
		},
		{
			name: "bills",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().UserClientIDs(context.Background(), userID).Return([]uuid.UUID{clientID}, nil)
				store.EXPECT().ClientsByIDs(context.Background(), []uuid.UUID{clientID}).
					Return([]entity.Client{{ID: clientID}}, nil)
				store.EXPECT().TrackedBillsByClientIDs(context.Background(), []uuid.UUID{clientID}).Return(nil, cause)
			},
			stage: "bills",
		},
		{
			name: "notifications",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().UserClientIDs(context.Background(), userID).Return(nil, nil)
				store.EXPECT().RecentNotifications(context.Background(), userID, entity.RecentNotificationLimit).
					Return(nil, cause)
			},
			stage: "notifications",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			tt.setup(store)

			_, err := service.NewFetcher(store).Synchronize(context.Background(), userID)
			require.Error(t, err)

			var fetchErr *entity.FetchError
			require.ErrorAs(t, err, &fetchErr)
			require.Equal(t, tt.stage, fetchErr.Stage)
			require.ErrorIs(t, err, cause)
		})
	}
}
