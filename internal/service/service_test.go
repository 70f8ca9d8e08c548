package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
	"github.com/Rasamaha24/m5-advocate-portal/internal/mocks"
	"github.com/Rasamaha24/m5-advocate-portal/internal/service"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*service.Service, *mocks.MockStore, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	return service.New(store, producer, nil, 30*time.Minute), store, producer
}

func userCtx() (context.Context, entity.User) {
	user := entity.User{ID: uuid.Must(uuid.NewV4()), Email: "advocate@example.test"}

	return entity.CtxWithUser(context.Background(), user), user
}

func expectFullFetch(store *mocks.MockStore, userID uuid.UUID, ns []entity.Notification) {
	store.EXPECT().UserClientIDs(gomock.Any(), userID).Return(nil, nil)
	store.EXPECT().RecentNotifications(gomock.Any(), userID, entity.RecentNotificationLimit).
		Return(ns, nil)
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	ns := []entity.Notification{{ID: uuid.Must(uuid.NewV4()), UserID: user.ID}}
	expectFullFetch(store, user.ID, ns)

	snap, err := s.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, ns, snap.Notifications)
	require.Equal(t, uint64(1), snap.Generation)

	// Second call reuses the session, no fetch.
	again, err := s.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, snap.Generation, again.Generation)
}

func TestService_Dashboard_Unauthenticated(t *testing.T) {
	t.Parallel()

	s, _, _ := newService(t)

	_, err := s.Dashboard(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_Dashboard_InitialFetchFailureRetries(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	store.EXPECT().UserClientIDs(gomock.Any(), user.ID).Return(nil, errors.New("timeout"))

	_, err := s.Dashboard(ctx)
	require.Error(t, err)

	// The failed session was dropped; the next call starts a fresh fetch
	// instead of serving an empty dashboard.
	expectFullFetch(store, user.ID, nil)

	snap, err := s.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), snap.Generation)
}

func TestService_Refresh_KeepsLastGoodSnapshot(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	ns := []entity.Notification{{ID: uuid.Must(uuid.NewV4()), UserID: user.ID}}
	expectFullFetch(store, user.ID, ns)

	first, err := s.Dashboard(ctx)
	require.NoError(t, err)

	store.EXPECT().UserClientIDs(gomock.Any(), user.ID).Return(nil, errors.New("timeout"))

	snap, err := s.Refresh(ctx)
	require.Error(t, err)

	var fetchErr *entity.FetchError
	require.ErrorAs(t, err, &fetchErr)

	// The error comes with the previous snapshot, never a blank one.
	require.Equal(t, first.Generation, snap.Generation)
	require.Equal(t, ns, snap.Notifications)
}

func TestService_MarkNotificationRead(t *testing.T) {
	t.Parallel()

	s, store, producer := newService(t)
	ctx, user := userCtx()

	n := entity.Notification{ID: uuid.Must(uuid.NewV4()), UserID: user.ID}
	expectFullFetch(store, user.ID, []entity.Notification{n})

	store.EXPECT().MarkNotificationRead(gomock.Any(), n.ID, user.ID).Return(nil)
	producer.EXPECT().NotificationsChanged(gomock.Any(), user.ID, []uuid.UUID{n.ID})

	require.NoError(t, s.MarkNotificationRead(ctx, n.ID))

	snap, err := s.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, snap.UnreadCount())
}

func TestService_Subscribe(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	expectFullFetch(store, user.ID, nil)

	feed, cancel, err := s.Subscribe(ctx)
	require.NoError(t, err)

	defer cancel()

	snap := <-feed
	require.Equal(t, uint64(1), snap.Generation)
}

func TestService_CloseSession(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	expectFullFetch(store, user.ID, nil)

	feed, cancel, err := s.Subscribe(ctx)
	require.NoError(t, err)

	defer cancel()

	<-feed

	require.NoError(t, s.CloseSession(ctx))

	_, open := <-feed
	require.False(t, open)
}

func TestService_CloseIdleSessions(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	expectFullFetch(store, user.ID, nil)

	_, err := s.Dashboard(ctx)
	require.NoError(t, err)

	// A just-used session survives the sweep.
	require.NoError(t, s.CloseIdleSessions(context.Background()))

	_, err = s.Dashboard(ctx)
	require.NoError(t, err)
}

func TestService_CreateClient(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	store.EXPECT().CreateClient(gomock.Any(), gomock.Any(), user.ID).Return(nil)

	created, err := s.CreateClient(ctx, entity.Client{
		Name:         "Acme Health",
		ContactEmail: "ops@acme.test",
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsNil())
	require.Equal(t, entity.ClientStatusActive, created.Status)
}

func TestService_CreateClient_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		client entity.Client
	}{
		{name: "missing name", client: entity.Client{ContactEmail: "ops@acme.test"}},
		{name: "missing contact email", client: entity.Client{Name: "Acme"}},
		{name: "bad status", client: entity.Client{Name: "Acme", ContactEmail: "ops@acme.test", Status: "frozen"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _, _ := newService(t)
			ctx, _ := userCtx()

			_, err := s.CreateClient(ctx, tt.client)
			require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
		})
	}
}

func TestService_TrackBill(t *testing.T) {
	t.Parallel()

	s, store, producer := newService(t)
	ctx, user := userCtx()

	link := entity.BillLink{
		ClientID: uuid.Must(uuid.NewV4()),
		BillID:   uuid.Must(uuid.NewV4()),
		Position: entity.BillPositionSupport,
	}

	store.EXPECT().IsClientMember(gomock.Any(), user.ID, link.ClientID).Return(true, nil)
	store.EXPECT().UpsertBillLink(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().BillChanged(gomock.Any(), link.BillID)

	require.NoError(t, s.TrackBill(ctx, link))
}

func TestService_TrackBill_Forbidden(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	link := entity.BillLink{
		ClientID: uuid.Must(uuid.NewV4()),
		BillID:   uuid.Must(uuid.NewV4()),
		Position: entity.BillPositionSupport,
	}

	store.EXPECT().IsClientMember(gomock.Any(), user.ID, link.ClientID).Return(false, nil)

	require.ErrorIs(t, s.TrackBill(ctx, link), entity.ErrForbidden)
}

func TestService_TrackBill_InvalidPosition(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	link := entity.BillLink{
		ClientID: uuid.Must(uuid.NewV4()),
		BillID:   uuid.Must(uuid.NewV4()),
		Position: "neutral",
	}

	store.EXPECT().IsClientMember(gomock.Any(), user.ID, link.ClientID).Return(true, nil)

	require.ErrorIs(t, s.TrackBill(ctx, link), entity.ErrIncorrectRequestBody)
}

func TestService_UntrackBill(t *testing.T) {
	t.Parallel()

	s, store, producer := newService(t)
	ctx, user := userCtx()

	clientID := uuid.Must(uuid.NewV4())
	billID := uuid.Must(uuid.NewV4())

	store.EXPECT().IsClientMember(gomock.Any(), user.ID, clientID).Return(true, nil)
	store.EXPECT().DeleteBillLink(gomock.Any(), clientID, billID).Return(nil)
	producer.EXPECT().BillChanged(gomock.Any(), billID)

	require.NoError(t, s.UntrackBill(ctx, clientID, billID))
}

func TestService_UpdateBillPosition(t *testing.T) {
	t.Parallel()

	s, store, producer := newService(t)
	ctx, user := userCtx()

	clientID := uuid.Must(uuid.NewV4())
	billID := uuid.Must(uuid.NewV4())

	store.EXPECT().IsClientMember(gomock.Any(), user.ID, clientID).Return(true, nil)
	store.EXPECT().UpdateBillLinkPosition(gomock.Any(), clientID, billID, entity.BillPositionOppose).Return(nil)
	producer.EXPECT().BillChanged(gomock.Any(), billID)

	require.NoError(t, s.UpdateBillPosition(ctx, clientID, billID, entity.BillPositionOppose))
}

func TestService_NotifyBillChanged_ResyncsOpenSessions(t *testing.T) {
	t.Parallel()

	s, store, _ := newService(t)
	ctx, user := userCtx()

	expectFullFetch(store, user.ID, nil)

	first, err := s.Dashboard(ctx)
	require.NoError(t, err)

	done := make(chan struct{})

	store.EXPECT().UserClientIDs(gomock.Any(), user.ID).Return(nil, nil)
	store.EXPECT().RecentNotifications(gomock.Any(), user.ID, entity.RecentNotificationLimit).
		DoAndReturn(func(context.Context, uuid.UUID, int) ([]entity.Notification, error) {
			defer close(done)
			return nil, nil
		})

	s.NotifyBillChanged(context.Background())

	<-done

	require.Eventually(t, func() bool {
		snap, err := s.Dashboard(ctx)
		return err == nil && snap.Generation > first.Generation
	}, time.Second, time.Millisecond)
}
