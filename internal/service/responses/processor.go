package responses

import (
	"context"
	"errors"

	"driver-dispatch-service/internal/apperr"
	"driver-dispatch-service/internal/logx"
)

// Processor processes driver response events
type Processor struct {
	assignments AssignmentPort
	factory     *actionFactory
	logger      logx.Logger
}

// NewProcessor creates a new responses.Processor
func NewProcessor(assignments AssignmentPort, logger logx.Logger) *Processor {
	p := &Processor{
		assignments: assignments,
		logger:      logger,
	}
	p.factory = newActionFactory(p.onAccept, p.onDecline, p.onCancel, p.onReconfirm)
	return p
}

// Handle processes a single response event. Unknown actions are skipped;
// stale events that no longer match any pending offer are dropped rather
// than retried, since the state they refer to has already moved on.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Action)
	if !ok {
		p.logger.Debug("unknown response action",
			logx.String("action", e.Action),
			logx.Int64("appointment_id", e.AppointmentID),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) dropStale(e Event, err error) error {
	if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) {
		p.logger.Warn("stale driver response dropped",
			logx.String("action", e.Action),
			logx.Int64("appointment_id", e.AppointmentID),
			logx.Int64("driver_id", e.DriverID),
			logx.Err(err),
		)
		return nil
	}
	return err
}

func (p *Processor) onAccept(ctx context.Context, e Event) error {
	_, err := p.assignments.Accept(ctx, e.AppointmentID, e.DriverID)
	return p.dropStale(e, err)
}

func (p *Processor) onDecline(ctx context.Context, e Event) error {
	_, err := p.assignments.Decline(ctx, e.AppointmentID, e.DriverID)
	return p.dropStale(e, err)
}

func (p *Processor) onCancel(ctx context.Context, e Event) error {
	_, err := p.assignments.Cancel(ctx, e.AppointmentID, e.DriverID)
	return p.dropStale(e, err)
}

func (p *Processor) onReconfirm(ctx context.Context, e Event) error {
	_, err := p.assignments.Reconfirm(ctx, e.AppointmentID, e.DriverID)
	return p.dropStale(e, err)
}
