package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"driver-dispatch-service/internal/http/handlers"
	mw "driver-dispatch-service/internal/http/middleware"
	"driver-dispatch-service/internal/http/middleware/ratelimit"
	"driver-dispatch-service/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	base *handlers.Handlers,
	assign *handlers.AssignmentHandler,
	logger logx.Logger,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw.Observability(logger))
	if limiter != nil {
		r.Use(limiter.Handler())
	}
	// Assignment runs chain several external provider calls per unit.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/appointments/{id}", func(r chi.Router) {
		r.Post("/assign", assign.Assign)
		r.Post("/tasks", assign.CreateTasks)
		r.Post("/accept", assign.Accept)
		r.Post("/decline", assign.Decline)
		r.Post("/cancel", assign.Cancel)
		r.Post("/reconfirm", assign.Reconfirm)
		r.Post("/retry", assign.Retry)
	})
	r.Post("/assignments/retry-sweep", assign.SweepAll)

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
