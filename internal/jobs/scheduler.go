package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic maintenance jobs. Each job is guarded by
// cron's SkipIfStillRunning wrapper so a slow run is never re-entered by the
// next timer fire. Jobs receive a context that is cancelled when the
// scheduler shuts down.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// Job is one schedulable unit of work; now is the trigger time.
type Job func(ctx context.Context, now time.Time) error

func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cl := &cronLogger{logger: logger}
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cl))),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a job under the given cron spec (standard 5-field syntax).
func (s *Scheduler) Register(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		now := time.Now()
		s.logger.Info("job started", "job", name)
		if err := s.ctx.Err(); err != nil {
			return
		}
		if err := job(s.ctx, now); err != nil {
			// No retry here; the next scheduled run is the retry.
			s.logger.Error("job failed", "job", name, "error", err)
			return
		}
		s.logger.Info("job finished", "job", name, "duration", time.Since(now).String())
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for in-flight jobs up to the deadline on
// ctx, then cancels their context so they abandon the rest of their batch.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("shutdown deadline reached, cancelling in-flight jobs")
	}
	s.cancel()
}

// cronLogger adapts slog to cron's Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
