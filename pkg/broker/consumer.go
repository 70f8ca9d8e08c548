package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	l             *slog.Logger
	r             *kafka.Reader
	topicHandlers map[string]func(context.Context, kafka.Message) error
}

func NewConsumer(
	brokers []string,
	groupID string,
	topics ...string,
) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return &Consumer{
		l:             l,
		r:             r,
		topicHandlers: make(map[string]func(context.Context, kafka.Message) error),
	}
}

func (c *Consumer) Handle(topic string, handler func(context.Context, kafka.Message) error) *Consumer {
	c.topicHandlers[topic] = handler
	return c
}

// Run blocks consuming messages until the context is canceled or the reader
// fails. Handler errors are logged, not fatal; a reader error is returned so
// the caller can decide whether to reconnect.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.r.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.l.Info("consumer stopped")
				return nil
			}

			return fmt.Errorf("read message: %w", err)
		}

		handler, ok := c.topicHandlers[m.Topic]
		if !ok {
			c.l.Warn("kafka handler not found", "topic", m.Topic)
			continue
		}

		err = handler(ctx, m)
		if err != nil {
			c.l.Error(fmt.Sprintf("handle kafka msg: %s", err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.r.Close()
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
