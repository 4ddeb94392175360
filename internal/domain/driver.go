package domain

import "time"

// Commitment is an accepted piece of work on a driver's calendar, used for
// schedule-conflict checks during candidate selection.
type Commitment struct {
	AppointmentID int64
	ScheduledAt   time.Time
}

// Driver represents a worker eligible to receive offers. Owned by the
// worker-management side; the orchestrator reads it and writes DriverID
// back onto tasks.
type Driver struct {
	ID               int64
	ExternalWorkerID string
	Name             string
	Phone            string
	Active           bool
	Commitments      []Commitment
}

// ConflictsWith reports whether the driver already has an accepted
// commitment within buffer of at. The appointment being assigned is
// skipped so an edited appointment does not conflict with itself.
func (d *Driver) ConflictsWith(appointmentID int64, at time.Time, buffer time.Duration) bool {
	for _, c := range d.Commitments {
		if c.AppointmentID == appointmentID {
			continue
		}
		diff := c.ScheduledAt.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if diff <= buffer {
			return true
		}
	}
	return false
}
