package domain

import "time"

// Appointment is the booking record an assignment run operates on. The
// orchestrator only reads it; tasks are the mutable side.
type Appointment struct {
	ID              int64
	Plan            PlanType
	ScheduledAt     time.Time
	Address         string
	MovingPartnerID *int64
	NumUnits        int
}

// FullService reports whether unit 1 is routed through the moving partner.
func (a *Appointment) FullService() bool {
	return a.Plan == PlanFullService && a.MovingPartnerID != nil
}
