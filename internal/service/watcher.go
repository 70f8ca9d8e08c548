package service

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=watcher.go -destination=../mocks/watcher.go -package=mocks

// ChangeConsumer is a blocking change-event stream. Run returns nil on a
// clean shutdown and an error when the stream breaks.
type ChangeConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// Watcher keeps the change-event stream alive. A broken stream gets exactly
// one reconnect with a fresh consumer; a second failure degrades the portal to
// manual-refresh mode instead of retrying forever.
type Watcher struct {
	log         *slog.Logger
	newConsumer func() ChangeConsumer
	degraded    atomic.Bool
}

func NewWatcher(newConsumer func() ChangeConsumer) *Watcher {
	return &Watcher{
		log:         slog.Default().With("component", "change-watcher"),
		newConsumer: newConsumer,
	}
}

// Watch blocks until the stream shuts down cleanly or degrades.
func (w *Watcher) Watch(ctx context.Context) {
	const attempts = 2

	for attempt := 1; attempt <= attempts; attempt++ {
		consumer := w.newConsumer()

		err := consumer.Run(ctx)

		closeErr := consumer.Close()
		if closeErr != nil {
			w.log.Error("close change consumer", "error", closeErr)
		}

		if err == nil {
			return
		}

		subErr := &entity.SubscriptionError{Channel: "change-events", Err: err}

		if attempt < attempts {
			w.log.ErrorContext(ctx, "change stream broken, reconnecting", "error", subErr)
			continue
		}

		w.log.ErrorContext(ctx, "change stream broken twice, degrading to manual refresh", "error", subErr)
	}

	w.degraded.Store(true)
}

// Degraded reports whether live updates are off and the portal relies on
// manual refresh.
func (w *Watcher) Degraded() bool {
	return w.degraded.Load()
}
