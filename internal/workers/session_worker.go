package workers

import (
	"context"
	"time"

	"talentiq_backend/internal/logger"
	"talentiq_backend/internal/services"
)

// SessionWorker expires interview sessions that were started but never
// completed. Candidates who walk away get a clean slate instead of a
// forever-active session.
type SessionWorker struct {
	interviewService services.InterviewService
	interval         time.Duration
	maxAge           time.Duration
}

func NewSessionWorker(interviewService services.InterviewService, interval, maxAge time.Duration) *SessionWorker {
	return &SessionWorker{
		interviewService: interviewService,
		interval:         interval,
		maxAge:           maxAge,
	}
}

// Start launches the expiry loop until the context is cancelled.
func (w *SessionWorker) Start(ctx context.Context) {
	go w.expireStaleSessions(ctx)
}

func (w *SessionWorker) expireStaleSessions(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("session worker stopped")
			return
		case <-ticker.C:
			runTick("session", func() {
				cutoff := time.Now().Add(-w.maxAge)
				expired, err := w.interviewService.ExpireStaleSessions(cutoff)
				if err != nil {
					logger.Error("failed to expire stale sessions", "error", err)
					return
				}
				if expired > 0 {
					logger.Info("expired stale interview sessions", "count", expired)
				}
			})
		}
	}
}
