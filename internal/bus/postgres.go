package bus

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// PostgresChannel is the NOTIFY channel wallet events travel on.
const PostgresChannel = "cryptex_wallet"

// NotificationConn is a dedicated connection that can LISTEN. *pgx.Conn
// satisfies it.
type NotificationConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
}

// PostgresBus publishes events with NOTIFY on the database that holds the
// store. One listener connection per process feeds local subscribers.
type PostgresBus struct {
	db      *sqlx.DB
	channel string
	local   *MemoryBus
}

// NewPostgresBus creates a bus that notifies through db.
func NewPostgresBus(db *sqlx.DB) *PostgresBus {
	return &PostgresBus{
		db:      db,
		channel: PostgresChannel,
		local:   NewMemoryBus(),
	}
}

// Publish sends ev to every listening process, this one included.
func (b *PostgresBus) Publish(ctx context.Context, ev models.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if _, err := b.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", b.channel, string(data)); err != nil {
		logger.Log.Errorw("failed to notify wallet event", "channel", b.channel, "event_id", ev.ID, "error", err)
		return err
	}

	logger.Log.Debugw("wallet event published", "channel", b.channel, "event_id", ev.ID, "kind", ev.Kind)
	return nil
}

// Listen issues LISTEN on conn and hands every notification to local
// subscribers until ctx is done or the connection fails.
func (b *PostgresBus) Listen(ctx context.Context, conn NotificationConn) error {
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{b.channel}.Sanitize()); err != nil {
		logger.Log.Errorw("failed to listen for wallet events", "channel", b.channel, "error", err)
		return err
	}
	logger.Log.Infow("listening for wallet events", "channel", b.channel)

	for {
		n, err := conn.WaitForNotification(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			logger.Log.Errorw("wallet event listener stopped", "channel", b.channel, "error", err)
			return err
		}

		var ev models.Event
		if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
			logger.Log.Warnw("skipping malformed wallet event", "payload", n.Payload, "error", err)
			continue
		}
		_ = b.local.Publish(ctx, ev)
	}
}

// Subscribe calls handler for every event received by Listen until ctx is done.
func (b *PostgresBus) Subscribe(ctx context.Context, handler func(models.Event)) error {
	return b.local.Subscribe(ctx, handler)
}
