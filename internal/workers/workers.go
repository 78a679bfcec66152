package workers

import (
	"talentiq_backend/internal/logger"
)

// runTick guards a single worker iteration so a panic in one tick does
// not kill the loop.
func runTick(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("worker tick panicked", "worker", name, "panic", r)
		}
	}()
	fn()
}
