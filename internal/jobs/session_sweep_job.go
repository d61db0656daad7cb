package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep at the top of every minute.
const DefaultSweepSchedule = "0 * * * * *"

// SessionSweeper drops conversations idle for longer than ttl and reports how many it dropped.
type SessionSweeper interface {
	Sweep(ttl time.Duration) int
}

// SessionSweepJob periodically forgets idle chat sessions.
type SessionSweepJob struct {
	sessions SessionSweeper
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionSweepJob creates a job sweeping sessions idle for longer than ttl.
// schedule is a six-field cron expression; empty means DefaultSweepSchedule.
func NewSessionSweepJob(sessions SessionSweeper, ttl time.Duration, schedule string, logger *slog.Logger) *SessionSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &SessionSweepJob{
		sessions: sessions,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *SessionSweepJob) Start() error {
	if j.ttl <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", j.ttl)
	}

	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Run performs one sweep.
func (j *SessionSweepJob) Run() {
	if n := j.sessions.Sweep(j.ttl); n > 0 {
		j.logger.InfoContext(context.Background(), "Idle sessions dropped", "count", n)
	}
}

// Stop stops the schedule and waits for a running sweep to finish.
func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
