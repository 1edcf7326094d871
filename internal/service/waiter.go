package service

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"cycleops/internal/config"
	"cycleops/internal/domain"
)

// JobPoller reads deployment job state. *Setups satisfies it.
type JobPoller interface {
	Job(ctx context.Context, id int) (*domain.Job, error)
}

// errInProgress keeps the poll loop going while a job is non-terminal.
var errInProgress = errors.New("deployment still in progress")

// Waiter polls a deployment job at a fixed interval until it reaches a
// terminal state. A configured timeout bounds the wait; zero waits forever.
type Waiter struct {
	jobs     JobPoller
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
}

// NewWaiter builds a waiter from the deploy configuration.
func NewWaiter(cfg *config.Config, jobs JobPoller, logger *zap.Logger) *Waiter {
	return &Waiter{
		jobs:     jobs,
		interval: time.Duration(cfg.Deploy.PollInterval * float64(time.Second)),
		timeout:  time.Duration(cfg.Deploy.WaitTimeout) * time.Second,
		logger:   logger,
	}
}

// Wait blocks until the job succeeds, fails, or the wait times out. onPoll,
// if non-nil, is invoked with every observed job state. On success the
// terminal job is returned; a failed job yields a DeployError carrying the
// remote-reported reason, an exceeded bound a TimeoutError.
func (w *Waiter) Wait(ctx context.Context, jobID int, onPoll func(*domain.Job)) (*domain.Job, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	var last *domain.Job

	poll := func() error {
		job, err := w.jobs.Job(ctx, jobID)
		if err != nil {
			// The poll loop never retries API failures on its own.
			return backoff.Permanent(err)
		}
		last = job
		if onPoll != nil {
			onPoll(job)
		}

		switch job.Status {
		case domain.JobSucceeded:
			return nil
		case domain.JobFailed:
			return backoff.Permanent(&domain.DeployError{Job: job})
		default:
			w.logger.Debug("Deployment in progress",
				zap.Int("job", job.ID),
				zap.String("status", string(job.Status)))
			return errInProgress
		}
	}

	err := backoff.Retry(poll, backoff.WithContext(backoff.NewConstantBackOff(w.interval), ctx))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return last, &domain.TimeoutError{Job: last}
		}
		return last, err
	}
	return last, nil
}
