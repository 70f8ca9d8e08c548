package events_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Rasamaha24/m5-advocate-portal/internal/api/events"
)

type serviceStub struct {
	billChanged          int
	notificationsChanged []uuid.UUID
}

func (s *serviceStub) NotifyBillChanged(context.Context) {
	s.billChanged++
}

func (s *serviceStub) NotifyUserNotificationsChanged(_ context.Context, userID uuid.UUID) {
	s.notificationsChanged = append(s.notificationsChanged, userID)
}

func TestEventHandler_BillChanged(t *testing.T) {
	t.Parallel()

	stub := &serviceStub{}
	h := events.NewEventHandler(stub)

	msg := kafka.Message{Value: []byte(`{"billId":"` + uuid.Must(uuid.NewV4()).String() + `"}`)}

	require.NoError(t, h.BillChanged(context.Background(), msg))
	require.Equal(t, 1, stub.billChanged)
}

func TestEventHandler_BillChanged_BadPayload(t *testing.T) {
	t.Parallel()

	stub := &serviceStub{}
	h := events.NewEventHandler(stub)

	err := h.BillChanged(context.Background(), kafka.Message{Value: []byte("not json")})
	require.Error(t, err)
	require.Zero(t, stub.billChanged)
}

func TestEventHandler_NotificationsChanged(t *testing.T) {
	t.Parallel()

	stub := &serviceStub{}
	h := events.NewEventHandler(stub)

	userID := uuid.Must(uuid.NewV4())
	msg := kafka.Message{Value: []byte(`{"userId":"` + userID.String() + `","ids":[]}`)}

	require.NoError(t, h.NotificationsChanged(context.Background(), msg))
	require.Equal(t, []uuid.UUID{userID}, stub.notificationsChanged)
}

func TestEventHandler_NotificationsChanged_BadUserID(t *testing.T) {
	t.Parallel()

	stub := &serviceStub{}
	h := events.NewEventHandler(stub)

	err := h.NotificationsChanged(context.Background(), kafka.Message{Value: []byte(`{"userId":"nope"}`)})
	require.Error(t, err)
	require.Empty(t, stub.notificationsChanged)
}
