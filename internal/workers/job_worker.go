package workers

import (
	"context"
	"time"

	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/services"
)

// JobWorker closes open postings whose deadline has passed.
type JobWorker struct {
	jobService services.JobService
	interval   time.Duration
}

func NewJobWorker(jobService services.JobService, interval time.Duration) *JobWorker {
	return &JobWorker{
		jobService: jobService,
		interval:   interval,
	}
}

// Start launches the auto-close loop until the context is cancelled.
func (w *JobWorker) Start(ctx context.Context) {
	go w.autoCloseJobs(ctx)
}

func (w *JobWorker) autoCloseJobs(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job worker stopped")
			return
		case <-ticker.C:
			runTick("job", func() {
				closed, err := w.jobService.CloseExpiredJobs()
				if err != nil {
					logger.Error("failed to auto-close expired jobs", "error", err)
					return
				}
				if closed > 0 {
					logger.Info("auto-closed expired jobs", "count", closed)
				}
			})
		}
	}
}
