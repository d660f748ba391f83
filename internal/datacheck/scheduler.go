package datacheck

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const checkTimeout = 30 * time.Second

// Scheduler runs the checker on a cron schedule.
type Scheduler struct {
	checker  *Checker
	schedule string
	cron     *cron.Cron
}

// NewScheduler accepts standard 5-field specs and descriptors such as
// "@every 5m".
func NewScheduler(checker *Checker, schedule string) *Scheduler {
	return &Scheduler{checker: checker, schedule: schedule}
}

// Start runs one check immediately, then registers the cron job.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(s.schedule, s.runOnce); err != nil {
		log.Printf("[error] operation=datacheck_schedule schedule=%q error=%v", s.schedule, err)
		return err
	}

	s.runOnce()
	s.cron = c
	c.Start()
	log.Printf("[info] operation=datacheck_schedule message=scheduler started schedule=%q", s.schedule)
	return nil
}

// Stop waits for a running check to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()
	s.checker.Run(ctx)
}
