package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/recinall/IrrigoDash/internal/refresh"
)

// Refresher rebuilds the dashboard data on a fixed wall-clock cadence and
// keeps the most recent result for the operator endpoints.
type Refresher struct {
	RB        *refresh.Rebuilder
	Interval  time.Duration
	cancelCtx context.CancelFunc

	mu     sync.RWMutex
	latest *refresh.Result
}

// NewRefresher creates a new background worker for periodic rebuilds.
func NewRefresher(rb *refresh.Rebuilder, interval time.Duration) *Refresher {
	return &Refresher{
		RB:       rb,
		Interval: interval,
	}
}

func (r *Refresher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.cancelCtx = cancel

	go func() {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()

		log.Printf("[refresher] started telemetry poll every %s", r.Interval)

		// Rebuild immediately on start
		r.run(ctx)

		for {
			select {
			case <-ctx.Done():
				log.Println("[refresher] stopped")
				return
			case <-ticker.C:
				r.run(ctx)
			}
		}
	}()
}

// Stop gracefully stops the background worker.
func (r *Refresher) Stop() {
	if r.cancelCtx != nil {
		r.cancelCtx()
	}
}

// Latest returns the most recent background rebuild, or nil before the
// first one completes.
func (r *Refresher) Latest() *refresh.Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}

func (r *Refresher) run(ctx context.Context) {
	res := r.RB.Rebuild(ctx, "")

	r.mu.Lock()
	r.latest = &res
	r.mu.Unlock()

	log.Printf("[refresher] telemetry refreshed: %d rows, %d sensors", res.Rows, len(res.Options))
}
