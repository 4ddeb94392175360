package onfleet

import (
	"context"
	"time"

	"driver-dispatch-service/internal/logx"
)

// Router is the task-routing surface the assignment engine depends on.
type Router interface {
	AssignToTeam(ctx context.Context, taskID, teamID string) error
	AssignToWorker(ctx context.Context, taskID, workerID string) error
	Unassign(ctx context.Context, taskID string) error
	FetchTask(ctx context.Context, taskID string) (*TaskSnapshot, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes the RetryingRouter behaviour
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingRouter retries transient provider failures with backoff.
type RetryingRouter struct {
	next    Router
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingRouter checks that next is not nil and returns a RetryingRouter
func NewRetryingRouter(next Router, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingRouter {
	if next == nil {
		return nil
	}
	return &RetryingRouter{next: next, logger: logger, retries: retries, cfg: cfg}
}

// AssignToTeam retries the underlying team assignment.
func (r *RetryingRouter) AssignToTeam(ctx context.Context, taskID, teamID string) error {
	return r.retry(ctx, "AssignToTeam", func() error {
		return r.next.AssignToTeam(ctx, taskID, teamID)
	})
}

// AssignToWorker retries the underlying worker assignment.
func (r *RetryingRouter) AssignToWorker(ctx context.Context, taskID, workerID string) error {
	return r.retry(ctx, "AssignToWorker", func() error {
		return r.next.AssignToWorker(ctx, taskID, workerID)
	})
}

// Unassign retries the underlying unassignment.
func (r *RetryingRouter) Unassign(ctx context.Context, taskID string) error {
	return r.retry(ctx, "Unassign", func() error {
		return r.next.Unassign(ctx, taskID)
	})
}

// FetchTask retries the underlying task read.
func (r *RetryingRouter) FetchTask(ctx context.Context, taskID string) (*TaskSnapshot, error) {
	var snap *TaskSnapshot
	err := r.retry(ctx, "FetchTask", func() error {
		var err error
		snap, err = r.next.FetchTask(ctx, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *RetryingRouter) retry(ctx context.Context, method string, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == r.cfg.MaxAttempts || !IsRetryable(err) {
			break
		}
		delay := backoff(r.cfg.BaseDelay, r.cfg.MaxDelay, attempt)
		if r.retries != nil {
			r.retries.Inc()
		}
		r.logger.Warn("task router retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// backoff computes the retry delay
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

var _ Router = (*Client)(nil)
var _ Router = (*RetryingRouter)(nil)
