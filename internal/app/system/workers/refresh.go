// internal/app/system/workers/refresh.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/mnogodumalon/kurs56/internal/app/reporting"
	"go.uber.org/zap"
)

// Refresher is a background worker that reloads the dashboard snapshot on a
// fixed interval so figures stay current without manual refreshes.
type Refresher struct {
	model    *reporting.Model
	log      *zap.Logger
	interval time.Duration
	timeout  time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewRefresher creates a refresh worker.
//
// Parameters:
//   - model: the shared dashboard model to reload
//   - logger: zap logger for logging
//   - interval: how often to reload (e.g., 5 minutes)
//   - timeout: per-reload deadline
func NewRefresher(model *reporting.Model, logger *zap.Logger, interval, timeout time.Duration) *Refresher {
	return &Refresher{
		model:    model,
		log:      logger,
		interval: interval,
		timeout:  timeout,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop.
func (w *Refresher) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("dashboard refresh worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *Refresher) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("dashboard refresh worker stopped")
}

func (w *Refresher) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	// A failed reload keeps the previous view; the next tick retries.
	if err := w.model.Load(ctx); err != nil {
		w.log.Warn("scheduled dashboard reload failed", zap.Error(err))
	}
}
