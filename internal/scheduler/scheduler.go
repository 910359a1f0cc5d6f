// Package scheduler wires up the cron job that periodically runs a poll
// cycle, plus the on-demand trigger used by interactive actions.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"go-gigradar/internal/poller"
)

type Scheduler struct {
	cron   *cron.Cron
	poller *poller.Poller
	spec   string // cron spec, e.g. "@every 30m"
}

// New creates a Scheduler that fires every intervalMinutes minutes.
func New(p *poller.Poller, intervalMinutes int) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		poller: p,
		spec:   fmt.Sprintf("@every %dm", intervalMinutes),
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so postings flow without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.poller.RunCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] cron started, spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.poller.RunCycle(ctx)

	return nil
}

// TriggerNow runs one poll cycle on demand. If a cycle is already in
// flight the poller's guard turns this into a no-op.
func (s *Scheduler) TriggerNow(ctx context.Context) {
	go s.poller.RunCycle(ctx)
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] cron stopped")
}
