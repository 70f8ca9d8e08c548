package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Rasamaha24/m5-advocate-portal/internal/mocks"
	"github.com/Rasamaha24/m5-advocate-portal/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWatcher_CleanShutdown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	consumer := mocks.NewMockChangeConsumer(ctrl)

	consumer.EXPECT().Run(context.Background()).Return(nil)
	consumer.EXPECT().Close().Return(nil)

	w := service.NewWatcher(func() service.ChangeConsumer { return consumer })
	w.Watch(context.Background())

	require.False(t, w.Degraded())
}

func TestWatcher_ReconnectsOnceThenRecovers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	broken := mocks.NewMockChangeConsumer(ctrl)
	broken.EXPECT().Run(context.Background()).Return(errors.New("broker gone"))
	broken.EXPECT().Close().Return(nil)

	healthy := mocks.NewMockChangeConsumer(ctrl)
	healthy.EXPECT().Run(context.Background()).Return(nil)
	healthy.EXPECT().Close().Return(nil)

	consumers := []service.ChangeConsumer{broken, healthy}

	w := service.NewWatcher(func() service.ChangeConsumer {
		next := consumers[0]
		consumers = consumers[1:]

		return next
	})
	w.Watch(context.Background())

	require.False(t, w.Degraded())
	require.Empty(t, consumers)
}

func TestWatcher_DegradesAfterSecondFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	var made int

	w := service.NewWatcher(func() service.ChangeConsumer {
		made++

		consumer := mocks.NewMockChangeConsumer(ctrl)
		consumer.EXPECT().Run(context.Background()).Return(errors.New("broker gone"))
		consumer.EXPECT().Close().Return(nil)

		return consumer
	})
	w.Watch(context.Background())

	// One reconnect attempt, never a third.
	require.Equal(t, 2, made)
	require.True(t, w.Degraded())
}
