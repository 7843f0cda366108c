package order

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartStuckOrdersMonitor periodically reports orders sitting in
// pending_approval longer than pendingAge. Blocks until ctx is done.
func (uc *DefaultOrderUsecase) StartStuckOrdersMonitor(ctx context.Context, interval, pendingAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-pendingAge)
			stale, err := uc.OrderRepo.FindStalePendingOrders(cutoff)
			if err != nil {
				zap.L().Error("stuck-order scan failed", zap.Error(err))
				continue
			}

			uc.Metrics.SetStalePending(float64(len(stale)))
			for _, o := range stale {
				zap.L().Warn("order stuck in pending_approval",
					zap.String("order_id", o.ID),
					zap.Int64("order_number", o.OrderNumber),
					zap.Time("created_at", o.CreatedAt))
			}
		}
	}
}
