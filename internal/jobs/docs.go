// Package jobs provides scheduled background tasks for the ordering assistant.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionSweepJob - Forgets chat sessions idle for longer than the session TTL,
// so an abandoned conversation starts over from the welcome menu.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessions, 30*time.Minute, jobs.DefaultSweepSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first). The sweep runs once a
// minute by default and is configured with SESSION_SWEEP_SCHEDULE.
package jobs
