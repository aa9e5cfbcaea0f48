package bus

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// RedisBus publishes events on a Redis channel and stamps a ping key so
// late joiners can tell when the wallet last changed.
type RedisBus struct {
	client  *redis.Client
	channel string
	pingKey string
}

// NewRedisBus creates a bus whose channel and ping key carry prefix.
func NewRedisBus(client *redis.Client, prefix string) *RedisBus {
	return &RedisBus{
		client:  client,
		channel: prefix + Channel,
		pingKey: prefix + PingKey,
	}
}

// Publish sends ev and updates the ping key in one round trip.
func (b *RedisBus) Publish(ctx context.Context, ev models.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	_, err = b.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, b.channel, data)
		pipe.Set(ctx, b.pingKey, ev.At, 0)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to publish wallet event", "channel", b.channel, "event_id", ev.ID, "error", err)
		return err
	}

	logger.Log.Debugw("wallet event published", "channel", b.channel, "event_id", ev.ID, "kind", ev.Kind)
	return nil
}

// LastPing returns the time in Unix milliseconds of the last published event,
// or zero if nothing was published yet.
func (b *RedisBus) LastPing(ctx context.Context) (int64, error) {
	at, err := b.client.Get(ctx, b.pingKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return at, err
}

// Subscribe calls handler for every event until ctx is done.
func (b *RedisBus) Subscribe(ctx context.Context, handler func(models.Event)) error {
	ps := b.client.Subscribe(ctx, b.channel)
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return err
	}

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.Log.Warnw("skipping malformed wallet event", "payload", msg.Payload, "error", err)
				continue
			}
			handler(ev)
		}
	}
}
