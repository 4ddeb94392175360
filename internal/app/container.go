package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"driver-dispatch-service/internal/config"
	"driver-dispatch-service/internal/gateway/notify"
	"driver-dispatch-service/internal/gateway/onfleet"
	"driver-dispatch-service/internal/http/handlers"
	"driver-dispatch-service/internal/http/router"
	"driver-dispatch-service/internal/logx"
	"driver-dispatch-service/internal/metrics"
	"driver-dispatch-service/internal/repository"
	"driver-dispatch-service/internal/service/assignment"
	"driver-dispatch-service/internal/service/responses"
	"driver-dispatch-service/internal/service/selector"
	"driver-dispatch-service/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
	worker    bool
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// ForWorker registers the worker-only providers (Kafka consumer, processor).
func (b *ContainerBuilder) ForWorker() *ContainerBuilder {
	b.worker = true
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if b.worker {
		if err := registerWorker(container); err != nil {
			return nil, fmt.Errorf("worker: %w", err)
		}
		return container, nil
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the background worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().ForWorker().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

type countersOut struct {
	dig.Out

	OffersSent     prometheus.Counter `name:"offers_sent_total"`
	Declines       prometheus.Counter `name:"declines_total"`
	Exhausted      prometheus.Counter `name:"exhausted_units_total"`
	GatewayRetries prometheus.Counter `name:"gateway_retries_total"`
	RateLimit      prometheus.Counter `name:"rate_limit_exceeded_total"`
}

func newCounters() countersOut {
	out := countersOut{
		OffersSent:     metrics.NewOffersSentTotal(),
		Declines:       metrics.NewDeclinesTotal(),
		Exhausted:      metrics.NewExhaustedUnitsTotal(),
		GatewayRetries: metrics.NewGatewayRetriesTotal(),
		RateLimit:      metrics.NewRateLimitExceededTotal(),
	}
	prometheus.MustRegister(
		out.OffersSent, out.Declines, out.Exhausted,
		out.GatewayRetries, out.RateLimit,
	)
	return out
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newCounters,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type retryingRouterIn struct {
	dig.In

	Cfg     *config.Config
	Client  *onfleet.Client
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *onfleet.Client {
			return onfleet.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey)
		},
		func(in retryingRouterIn) *onfleet.RetryingRouter {
			return onfleet.NewRetryingRouter(in.Client, in.Logger, in.Retries, onfleet.RetryConfig{
				MaxAttempts: in.Cfg.Retry.MaxAttempts,
				BaseDelay:   in.Cfg.Retry.BaseDelay,
				MaxDelay:    in.Cfg.Retry.MaxDelay,
			})
		},
		func(cfg *config.Config) *notify.Client {
			return notify.NewClient(cfg.Notify.BaseURL, cfg.Notify.Token, cfg.Notify.From)
		},
		func(r *onfleet.RetryingRouter) assignment.TaskRouter { return r },
		func(c *notify.Client) assignment.Notifier { return newOfferNotifier(c) },
		func(c *onfleet.Client) assignment.TaskCreator { return newProviderTaskCreator(c) },
	)
}

type machineIn struct {
	dig.In

	Cfg      *config.Config
	Selector *selector.Selector
	Router   assignment.TaskRouter
	Notifier assignment.Notifier
	Tasks    *repository.TaskRepo
	Logger   logx.Logger

	OffersSent prometheus.Counter `name:"offers_sent_total"`
	Declines   prometheus.Counter `name:"declines_total"`
	Exhausted  prometheus.Counter `name:"exhausted_units_total"`
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewAppointmentRepo,
		repository.NewPartnerRepo,
		repository.NewDriverRepo,
		repository.NewTaskRepo,
		assignment.NewIdempotencyGuard,
		func(cfg *config.Config, drivers *repository.DriverRepo) *selector.Selector {
			return selector.New(drivers, cfg.Assignment.ConflictBuffer)
		},
		func(in machineIn) *assignment.UnitMachine {
			m := assignment.NewUnitMachine(in.Selector, in.Router, in.Notifier, in.Tasks, assignment.MachineConfig{
				AcceptanceWindow: in.Cfg.Assignment.AcceptanceWindow,
				ReservationSpan:  in.Cfg.Assignment.ConflictBuffer,
				NetworkTeamID:    in.Cfg.Provider.NetworkTeamID,
			}, in.Logger)
			return m.WithCounters(in.OffersSent, in.Declines, in.Exhausted)
		},
		func(
			cfg *config.Config,
			appts *repository.AppointmentRepo,
			partners *repository.PartnerRepo,
			drivers *repository.DriverRepo,
			tasks *repository.TaskRepo,
			machine *assignment.UnitMachine,
			taskRouter assignment.TaskRouter,
			creator assignment.TaskCreator,
			notifier assignment.Notifier,
			guard *assignment.IdempotencyGuard,
			logger logx.Logger,
		) *assignment.Service {
			return assignment.NewService(
				appts, partners, drivers, tasks,
				machine, taskRouter, creator, notifier, guard,
				cfg.Assignment.AcceptanceWindow, 30*time.Second, logger,
			)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      75 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(svc *assignment.Service) handlers.AssignmentUsecase { return svc },
		handlers.NewAssignmentHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *assignment.Service) responses.AssignmentPort { return svc },
		responses.NewProcessor,
		func(cfg *config.Config, p *responses.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, makeResponsesKafka(p))
		},
	)
}
