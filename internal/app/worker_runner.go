package app

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"driver-dispatch-service/internal/config"
	"driver-dispatch-service/internal/logx"
	"driver-dispatch-service/internal/service/assignment"
	"driver-dispatch-service/internal/transport/kafka"
)

// WorkerRunner runs the background worker: the retry sweep loop plus the
// driver response consumer when Kafka is configured.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	cfg *config.Config,
	pool *pgxpool.Pool,
	logger logx.Logger,
	svc *assignment.Service,
	consumer *kafka.Consumer,
) error {
	defer closeWorker(pool, logger, consumer)

	logger.Info("dispatch worker started")

	errCh := make(chan error, 1)
	if consumer != nil {
		go func() { errCh <- consumer.Run(ctx) }()
	} else {
		logger.Warn("kafka not configured, running sweep loop only")
	}

	ticker := time.NewTicker(cfg.Assignment.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if consumer != nil {
				return <-errCh
			}
			return ctx.Err()
		case err := <-errCh:
			return err
		case <-ticker.C:
			results, err := svc.SweepAll(ctx)
			if err != nil {
				logger.Error("retry sweep failed", logx.Err(err))
				continue
			}
			if len(results) > 0 {
				logger.Info("retry sweep finished", logx.Int("units", len(results)))
			}
		}
	}
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
