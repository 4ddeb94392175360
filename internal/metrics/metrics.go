package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOffersSentTotal returns a Prometheus counter for the number of driver offers sent
func NewOffersSentTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_offers_sent_total",
		Help: "Total number of driver offers sent",
	})
}

// NewDeclinesTotal returns a Prometheus counter for the number of recorded offer declines
func NewDeclinesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_declines_total",
		Help: "Total number of recorded offer declines",
	})
}

// NewExhaustedUnitsTotal returns a Prometheus counter for units that ran out of candidates
func NewExhaustedUnitsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_exhausted_units_total",
		Help: "Total number of units whose candidate pool was exhausted",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}
