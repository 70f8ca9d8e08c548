package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/Rasamaha24/m5-advocate-portal/pkg/broker"
)

type Service interface {
	NotifyBillChanged(ctx context.Context)
	NotifyUserNotificationsChanged(ctx context.Context, userID uuid.UUID)
}

// EventHandler turns broker change events into session re-synchronizes.
type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// BillChanged fans out to every open session. Bill data is shared, so any
// change can affect any user's tracked list.
func (h *EventHandler) BillChanged(ctx context.Context, msg kafka.Message) error {
	var event broker.BillChangedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal bill event: %w", err)
	}

	h.s.NotifyBillChanged(ctx)

	return nil
}

// NotificationsChanged re-synchronizes only the affected user's session.
func (h *EventHandler) NotificationsChanged(ctx context.Context, msg kafka.Message) error {
	var event broker.NotificationsChangedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal notification event: %w", err)
	}

	userID, err := uuid.FromString(event.UserID)
	if err != nil {
		return fmt.Errorf("parse user id %q: %w", event.UserID, err)
	}

	h.s.NotifyUserNotificationsChanged(ctx, userID)

	return nil
}
