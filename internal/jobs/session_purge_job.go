package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	distributorports "github.com/Apurer/wastewise-api/internal/domains/distributors/ports"
)

// SessionPurgeJob periodically removes expired distributor sessions from stores that do not
// expire them on their own.
type SessionPurgeJob struct {
	purger   distributorports.SessionPurger
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionPurgeJob creates the job. Intervals below one second are rounded up.
func NewSessionPurgeJob(purger distributorports.SessionPurger, interval time.Duration, logger *slog.Logger) *SessionPurgeJob {
	if interval < time.Second {
		interval = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionPurgeJob{
		purger:   purger,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_purge_job"),
	}
}

// Start schedules the purge and returns immediately.
func (j *SessionPurgeJob) Start() error {
	schedule := fmt.Sprintf("@every %s", j.interval)
	if _, err := j.cron.AddFunc(schedule, j.RunOnce); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "session purge job started", "interval", j.interval.String())
	return nil
}

// RunOnce performs a single purge.
func (j *SessionPurgeJob) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	purged, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "session purge failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "expired sessions purged", "count", purged)
	}
}

// Stop halts scheduling and waits for a running purge to finish.
func (j *SessionPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "session purge job stopped")
}
