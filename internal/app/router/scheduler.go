package router

import (
	"context"
	"time"

	"epgsync/internal/app/metrics"
	"epgsync/internal/app/reconcile"

	"go.uber.org/zap"
)

// Schedule refreshes the cached playlists on the given interval. A
// failed refresh keeps the previous cache and is retried on the next
// tick.
func Schedule(ctx context.Context, rec *reconcile.Reconciler, duration time.Duration) {
	ticker := time.NewTicker(duration)
	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Info("The scheduling task has been stopped.")
				return
			case <-ticker.C:
				logger.Info("Start executing the scheduling task.")

				if err := updatePlaylists(ctx, rec); err != nil {
					logger.Error("Failed to update playlists.", zap.Error(err))
					metrics.RecordRefresh(false)
				} else {
					metrics.RecordRefresh(true)
				}

				logger.Info("The scheduling task has been completed.")
			}
		}
	}()
}
