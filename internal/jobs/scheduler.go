package jobs

import (
	"context"
	"log"
	"os"

	"github.com/robfig/cron/v3"
)

const defaultSweepSchedule = "30 0 * * *"

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron *cron.Cron
	jobs *Jobs
}

func NewScheduler(jobs *Jobs) *Scheduler {
	cronLogger := cron.PrintfLogger(log.Default())
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron: c,
		jobs: jobs,
	}
}

// Start registers the jobs and starts the cron scheduler.
func (s *Scheduler) Start() {
	schedule := os.Getenv("SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = defaultSweepSchedule
	}

	if _, err := s.cron.AddFunc(schedule, s.jobs.RunSweep); err != nil {
		log.Printf("failed to schedule subscription sweep: %v", err)
	} else {
		log.Printf("scheduled subscription sweep at %q", schedule)
	}

	s.cron.Start()
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
