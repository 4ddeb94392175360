package domain

import "time"

// UnitOutcome tags the result of one unit's pass through the orchestrator.
type UnitOutcome string

// List of possible per-unit outcomes
const (
	OutcomeOfferSent        UnitOutcome = "offer_sent"
	OutcomeAccepted         UnitOutcome = "accepted"
	OutcomeAlreadyAssigned  UnitOutcome = "already_assigned"
	OutcomeNoDrivers        UnitOutcome = "no_drivers"
	OutcomeManualPending    UnitOutcome = "manual_pending"
	OutcomeBlockedNoPhone   UnitOutcome = "blocked_no_phone"
	OutcomeNotifyFailed     UnitOutcome = "notify_failed"
	OutcomeNoRetryNeeded    UnitOutcome = "no_retry_needed"
	OutcomePendingReconfirm UnitOutcome = "pending_reconfirmation"
	OutcomeError            UnitOutcome = "error"
)

// Failed reports whether the outcome counts against the appointment-level
// aggregate (207 vs 200 on the HTTP side). Exhaustion and manual-pending
// are normal terminal outcomes, not failures.
func (o UnitOutcome) Failed() bool {
	switch o {
	case OutcomeNotifyFailed, OutcomeError:
		return true
	default:
		return false
	}
}

// AssignmentResult is the per-unit value returned from an assignment run.
// Never persisted.
type AssignmentResult struct {
	UnitNumber      int         `json:"unit_number"`
	Status          UnitOutcome `json:"status"`
	DriverID        *int64      `json:"driver_id,omitempty"`
	MovingPartnerID *int64      `json:"moving_partner_id,omitempty"`
	Message         string      `json:"message,omitempty"`
}

// Reservation blocks a driver's time slot once they accept, preventing a
// second appointment from double-booking the same slot.
type Reservation struct {
	ID            int64
	AppointmentID int64
	DriverID      int64
	SlotStart     time.Time
	SlotEnd       time.Time
}
