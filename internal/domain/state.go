package domain

// UnitState is the assignment state of one task group within an appointment.
type UnitState string

// List of possible unit assignment states
const (
	StateUnassigned       UnitState = "unassigned"
	StateOffered          UnitState = "offered"
	StateAccepted         UnitState = "accepted"
	StateDeclined         UnitState = "declined"
	StateExpired          UnitState = "expired"
	StateExhausted        UnitState = "exhausted"
	StateBlockedNoPhone   UnitState = "blocked_no_phone"
	StatePendingPartner   UnitState = "pending_partner"
	StatePendingReconfirm UnitState = "pending_reconfirmation"
)

// transitions enumerates every legal state change. Anything absent is
// rejected by CanTransition.
var transitions = map[UnitState][]UnitState{
	StateUnassigned:       {StateOffered, StateExhausted, StateBlockedNoPhone, StatePendingPartner},
	StateOffered:          {StateAccepted, StateDeclined, StateExpired},
	StateDeclined:         {StateOffered, StateExhausted},
	StateExpired:          {StateOffered, StateExhausted},
	StateAccepted:         {StateUnassigned, StatePendingReconfirm},
	StatePendingReconfirm: {StateAccepted, StateUnassigned},
	StateBlockedNoPhone:   {StateOffered},
	StateExhausted:        {StateOffered},
}

// CanTransition reports whether moving from s to next is a legal
// state-machine step.
func (s UnitState) CanTransition(next UnitState) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the state ends the current assignment cycle.
// Exhausted and blocked units can re-enter a later cycle when the pool or
// the driver record changes, but no further offers go out within this one.
func (s UnitState) Terminal() bool {
	switch s {
	case StateAccepted, StateExhausted, StateBlockedNoPhone, StatePendingPartner:
		return true
	default:
		return false
	}
}
