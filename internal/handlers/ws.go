package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=ws.go -destination=mock_ws.go -package=handlers

// WalletSubscriber defines the notification source the stream listens to.
type WalletSubscriber interface {
	Subscribe(ctx context.Context, handler func(models.Event)) error
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewWalletStreamHandler upgrades to a websocket and pushes the wallet on
// connect and after every change notification. Each push re-reads the wallet,
// event payloads are never forwarded.
// @Summary Wallet stream
// @Description Websocket that sends a models.WalletPush on connect and on every wallet change
// @Tags wallet
// @Router /ws [get]
func NewWalletStreamHandler(svc WalletReader, sub WalletSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Warnw("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// the client never sends anything useful; reading detects the close
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		push := func(kind string, at int64) {
			wallet, err := svc.GetWallet(ctx)
			if err != nil {
				logger.Log.Errorw("failed to read wallet for stream", "error", err)
				return
			}
			if err := conn.WriteJSON(models.WalletPush{Kind: kind, At: at, Wallet: wallet}); err != nil {
				logger.Log.Debugw("stream write failed, closing", "error", err)
				cancel()
			}
		}

		push(models.EventSnapshot, time.Now().UnixMilli())
		if err := sub.Subscribe(ctx, func(ev models.Event) { push(ev.Kind, ev.At) }); err != nil {
			logger.Log.Errorw("wallet stream subscription ended", "error", err)
		}
	}
}
