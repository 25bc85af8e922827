package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Poller runs one poll iteration; it reports its own failures and never
// breaks the cadence.
type Poller interface {
	Poll(ctx context.Context)
}

// PollScheduler triggers the poller on a fixed interval. At most one
// iteration is in flight at any moment: a tick that arrives while the
// previous iteration still runs is skipped, not queued.
type PollScheduler struct {
	cronEngine *cron.Cron
	poller     Poller
	logger     *logrus.Logger
	interval   time.Duration
	job        cron.Job
}

func NewPollScheduler(poller Poller, logger *logrus.Logger, interval time.Duration) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		poller:     poller,
		logger:     logger,
		interval:   interval,
	}
}

// Start registers the polling job and runs the first iteration immediately,
// through the same single-flight guard as the scheduled ones.
func (s *PollScheduler) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", s.interval)
	}
	s.logger.Info("Starting poll scheduler...")

	s.job = cron.NewChain(
		cron.SkipIfStillRunning(cron.PrintfLogger(s.logger)),
	).Then(cron.FuncJob(func() {
		s.poller.Poll(context.Background())
	}))

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cronEngine.AddJob(spec, s.job); err != nil {
		return fmt.Errorf("add polling job: %w", err)
	}

	s.cronEngine.Start()
	go s.job.Run()

	s.logger.Infof("Poll scheduler started, polling every %s.", s.interval)
	return nil
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from firing new jobs, waits for running ones.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Poll scheduler gracefully stopped.")
}
