package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l                 *slog.Logger
	w                 *kafka.Writer
	billTopic         string
	notificationTopic string
}

func NewProducer(l *slog.Logger, brokers []string, billTopic, notificationTopic string) *Producer {
	l = l.WithGroup("kafka")

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                 l,
		w:                 w,
		billTopic:         billTopic,
		notificationTopic: notificationTopic,
	}
}

// BillChangedEvent announces any mutation touching a bill or a client-bill
// link. Every open dashboard re-synchronizes on it.
type BillChangedEvent struct {
	BillID string `json:"billId"`
}

// NotificationsChangedEvent announces mutations of one user's notifications.
// Only that user's dashboards re-synchronize.
type NotificationsChangedEvent struct {
	UserID string   `json:"userId"`
	IDs    []string `json:"ids"`
}

func (p *Producer) BillChanged(ctx context.Context, billID uuid.UUID) {
	p.publish(ctx, p.billTopic, billID.String(), BillChangedEvent{BillID: billID.String()})
}

func (p *Producer) NotificationsChanged(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) {
	event := NotificationsChangedEvent{
		UserID: userID.String(),
		IDs:    make([]string, 0, len(ids)),
	}

	for _, id := range ids {
		event.IDs = append(event.IDs, id.String())
	}

	p.publish(ctx, p.notificationTopic, userID.String(), event)
}

func (p *Producer) publish(ctx context.Context, topic, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: b,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
