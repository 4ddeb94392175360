package assignment

import (
	"sync"

	"driver-dispatch-service/internal/apperr"
)

// IdempotencyGuard prevents two concurrent task-creation runs for the same
// appointment within one process. Assignment runs are not serialized here;
// they are idempotent by construction.
type IdempotencyGuard struct {
	mu     sync.Mutex
	active map[int64]struct{}
}

// NewIdempotencyGuard returns an empty guard.
func NewIdempotencyGuard() *IdempotencyGuard {
	return &IdempotencyGuard{active: make(map[int64]struct{})}
}

// Acquire marks the appointment as undergoing creation. Fails fast with
// apperr.ErrConflict when already held.
func (g *IdempotencyGuard) Acquire(appointmentID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.active[appointmentID]; held {
		return apperr.ErrConflict
	}
	g.active[appointmentID] = struct{}{}
	return nil
}

// Release frees the appointment unconditionally. Must run on every exit
// path of the guarded operation.
func (g *IdempotencyGuard) Release(appointmentID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, appointmentID)
}
