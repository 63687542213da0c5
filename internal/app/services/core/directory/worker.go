package directory

import (
	"context"
	"medibook-service/internal/app/config"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically refreshes the cached doctor directory.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	directory DirectoryUsecase
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, directory DirectoryUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, directory: directory}
}

// Start schedules the refresh loop using the configured cron spec, falling
// back to hourly when the spec does not parse.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.DirectoryRefreshCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("directory.worker: invalid cron spec, falling back to hourly", zap.String("spec", spec), zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 1h", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		w.cron.Stop()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := w.directory.RefreshCache(runCtx); err != nil {
		w.log.Warn("directory.worker: refresh failed", zap.Error(err))
		return
	}
	w.log.Debug("directory.worker: doctor directory refreshed")
}
