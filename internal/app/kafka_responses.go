package app

import (
	"context"
	"time"

	"driver-dispatch-service/internal/service/responses"
	"driver-dispatch-service/internal/transport/kafka"
)

// makeResponsesKafka binds the response processor to the consumer with a
// per-event timeout so a stuck handler cannot stall the whole claim.
func makeResponsesKafka(p *responses.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event responses.Event) error {
		evCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return p.Handle(evCtx, event)
	}
}
