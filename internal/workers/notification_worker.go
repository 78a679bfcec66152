package workers

import (
	"context"
	"time"

	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/repositories"
)

// NotificationWorker prunes read notifications past their retention window.
type NotificationWorker struct {
	notificationRepo repositories.NotificationRepository
	interval         time.Duration
	retention        time.Duration
}

func NewNotificationWorker(notificationRepo repositories.NotificationRepository, interval, retention time.Duration) *NotificationWorker {
	return &NotificationWorker{
		notificationRepo: notificationRepo,
		interval:         interval,
		retention:        retention,
	}
}

// Start launches the cleanup loop until the context is cancelled.
func (w *NotificationWorker) Start(ctx context.Context) {
	go w.cleanupNotifications(ctx)
}

func (w *NotificationWorker) cleanupNotifications(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("notification worker stopped")
			return
		case <-ticker.C:
			runTick("notification", func() {
				cutoff := time.Now().Add(-w.retention)
				deleted, err := w.notificationRepo.DeleteReadNotificationsBefore(cutoff)
				if err != nil {
					logger.Error("failed to prune notifications", "error", err)
					return
				}
				if deleted > 0 {
					logger.Info("pruned read notifications", "count", deleted)
				}
			})
		}
	}
}
