package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/metrics"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// publish sends a change hint. Failures are logged and never fail the caller.
func (s *WalletService) publish(ctx context.Context, kind string, tx *models.Transaction) {
	if s.publisher == nil {
		logger.Log.Debugw("publisher not configured, skipping event", "kind", kind)
		return
	}

	ev := models.Event{
		ID:          uuid.NewString(),
		Kind:        kind,
		At:          s.now().UnixMilli(),
		Transaction: tx,
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		metrics.PublishErrors.Inc()
		logger.Log.Errorw("failed to publish wallet event", "event_id", ev.ID, "kind", kind, "error", err)
	}
}
