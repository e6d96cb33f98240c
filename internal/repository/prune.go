package repository

import (
	"context"
	"log/slog"
	"time"
)

// PruneIdempotencyKeys deletes keys older than ttl every interval until ctx
// is cancelled. A failed pass is logged and retried on the next tick.
func PruneIdempotencyKeys(ctx context.Context, repo IdempotencyRepository, ttl, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deleted, err := repo.DeleteOlderThan(ctx, now.Add(-ttl))
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Error("failed to prune idempotency keys", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("pruned idempotency keys", "deleted", deleted)
			}
		}
	}
}
