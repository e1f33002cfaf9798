package workers

import (
	"context"
	"time"

	"dhvanicast/internal/core/feedstore"

	"go.uber.org/zap"
)

// DefaultRefreshInterval فاصله بین دو refresh متوالی فید
const DefaultRefreshInterval = 10 * time.Second

// RefreshWorker polls the post storage and keeps every active feed scope's
// working set fresh. Overlapping refreshes for a scope are fenced by the
// store's generation counter, so a late response never clobbers newer data.
type RefreshWorker struct {
	Pool     *feedstore.Pool
	Interval time.Duration
	Logger   *zap.Logger
}

func NewRefreshWorker(pool *feedstore.Pool, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &RefreshWorker{
		Pool:     pool,
		Interval: interval,
		Logger:   logger,
	}
}

// Run گوش دادن به تایمر و تازه‌سازی همه scopeها
func (w *RefreshWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 RefreshWorker started", zap.Duration("interval", w.Interval))
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 Refresh worker stopped")
			return
		case <-ticker.C:
			errs := w.Pool.RefreshAll(ctx)
			for scope, err := range errs {
				w.Logger.Error("❌ Error refreshing feed scope", zap.String("scope", scope), zap.Error(err))
			}
		}
	}
}
