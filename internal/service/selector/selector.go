package selector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"driver-dispatch-service/internal/domain"
)

type driverPool interface {
	NetworkPool(ctx context.Context) ([]domain.Driver, error)
	PartnerPool(ctx context.Context, partnerID int64) ([]domain.Driver, error)
}

// Selector picks eligible drivers for one unit of an appointment. It only
// reads; every call with the same exclusion set yields the same order.
type Selector struct {
	pool   driverPool
	buffer time.Duration
}

// New creates a Selector with the given schedule-conflict buffer.
func New(pool driverPool, buffer time.Duration) *Selector {
	return &Selector{pool: pool, buffer: buffer}
}

// SelectCandidates returns the eligible drivers for the unit, ordered by
// fewest current commitments then by id. An empty result is a normal
// outcome, not an error. When partnerID is set the partner's approved
// pool is used instead of the general delivery network.
func (s *Selector) SelectCandidates(
	ctx context.Context,
	appt *domain.Appointment,
	unit int,
	excludeDriverIDs []int64,
	partnerID *int64,
) ([]domain.Driver, error) {
	var (
		pool []domain.Driver
		err  error
	)
	if partnerID != nil {
		pool, err = s.pool.PartnerPool(ctx, *partnerID)
	} else {
		pool, err = s.pool.NetworkPool(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("select candidates for unit %d: %w", unit, err)
	}

	excluded := make(map[int64]struct{}, len(excludeDriverIDs))
	for _, id := range excludeDriverIDs {
		excluded[id] = struct{}{}
	}

	out := make([]domain.Driver, 0, len(pool))
	for _, d := range pool {
		if !d.Active {
			continue
		}
		if _, ok := excluded[d.ID]; ok {
			continue
		}
		if d.ConflictsWith(appt.ID, appt.ScheduledAt, s.buffer) {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Commitments) != len(out[j].Commitments) {
			return len(out[i].Commitments) < len(out[j].Commitments)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
