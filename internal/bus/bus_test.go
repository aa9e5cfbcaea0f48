package bus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(ctx context.Context, ev models.Event) error { return f.err }

func TestMemoryBus_Broadcast(t *testing.T) {
	b := NewMemoryBus()
	first, stopFirst := b.Listen(1)
	defer stopFirst()
	second, stopSecond := b.Listen(1)
	defer stopSecond()

	ev := models.Event{ID: "ev1", Kind: models.EventWalletUpdated, At: 1}
	require.NoError(t, b.Publish(context.Background(), ev))

	assert.Equal(t, "ev1", (<-first).ID)
	assert.Equal(t, "ev1", (<-second).ID)
}

func TestMemoryBus_SlowListenerDoesNotBlock(t *testing.T) {
	b := NewMemoryBus()
	ch, stop := b.Listen(1)
	defer stop()

	ctx := context.Background()
	require.NoError(t, b.Publish(ctx, models.Event{ID: "ev1"}))
	require.NoError(t, b.Publish(ctx, models.Event{ID: "ev2"}))

	assert.Equal(t, "ev1", (<-ch).ID)
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %s", ev.ID)
	default:
	}
}

func TestMemoryBus_StopUnregisters(t *testing.T) {
	b := NewMemoryBus()
	ch, stop := b.Listen(1)
	stop()
	stop()

	require.NoError(t, b.Publish(context.Background(), models.Event{ID: "ev1"}))
	_, ok := <-ch
	assert.False(t, ok)
}

func TestMemoryBus_Subscribe(t *testing.T) {
	b := NewMemoryBus()
	ctx, cancel := context.WithCancel(context.Background())

	got := make(chan models.Event, 1)
	done := make(chan error, 1)
	go func() {
		done <- b.Subscribe(ctx, func(ev models.Event) { got <- ev })
	}()

	// wait for the subscriber to register
	require.Eventually(t, func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		return len(b.listeners) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, b.Publish(ctx, models.Event{ID: "ev1", Kind: models.EventRecompute}))
	assert.Equal(t, models.EventRecompute, (<-got).Kind)

	cancel()
	assert.NoError(t, <-done)
}

func TestMulti_JoinsErrors(t *testing.T) {
	b := NewMemoryBus()
	ch, stop := b.Listen(1)
	defer stop()

	boom := errors.New("boom")
	m := Multi{failingPublisher{err: boom}, b}

	err := m.Publish(context.Background(), models.Event{ID: "ev1"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "ev1", (<-ch).ID, "later publishers still run")
}

func TestKafkaPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := &models.Transaction{ID: "tx_1", Type: models.TypeDeposit}

	tests := []struct {
		name      string
		event     models.Event
		setupMock func(w *MockKafkaWriter)
		wantKey   string
		wantErr   bool
	}{
		{
			name:  "keyed by transaction",
			event: models.Event{ID: "ev1", Kind: models.EventWalletUpdated, Transaction: tx},
			setupMock: func(w *MockKafkaWriter) {
				w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, msgs ...kafka.Message) error {
						require.Len(t, msgs, 1)
						assert.Equal(t, "tx_1", string(msgs[0].Key))
						assert.Equal(t, "kind", msgs[0].Headers[0].Key)

						var ev models.Event
						require.NoError(t, json.Unmarshal(msgs[0].Value, &ev))
						assert.Equal(t, "tx_1", ev.Transaction.ID)
						return nil
					})
			},
		},
		{
			name:  "keyed by event",
			event: models.Event{ID: "ev2", Kind: models.EventRecompute},
			setupMock: func(w *MockKafkaWriter) {
				w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, msgs ...kafka.Message) error {
						assert.Equal(t, "ev2", string(msgs[0].Key))
						return nil
					})
			},
		},
		{
			name:  "writer error",
			event: models.Event{ID: "ev3"},
			setupMock: func(w *MockKafkaWriter) {
				w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewMockKafkaWriter(ctrl)
			tt.setupMock(w)

			err := NewKafkaPublisher(w).Publish(context.Background(), tt.event)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := NewMockKafkaWriter(ctrl)
	w.EXPECT().Close().Return(nil)

	assert.NoError(t, NewKafkaPublisher(w).Close())
}
