package domain

import "time"

// Task is one unit of provider work (pickup/customer/return leg) inside a
// task group. Tasks are created at booking time and only ever updated here.
type Task struct {
	ID                   int64
	AppointmentID        int64
	ExternalID           string
	UnitNumber           int
	DriverID             *int64
	Status               NotificationStatus
	LastNotifiedDriverID *int64
	DeclinedDriverIDs    []int64
	NotificationSentAt   *time.Time
	AcceptedAt           *time.Time
	DeclinedAt           *time.Time
}

// TaskGroup is the linked set of tasks sharing one unit number. All tasks
// in a group bind to the same driver or to none.
type TaskGroup struct {
	UnitNumber int
	Tasks      []Task
}

// UnitRef identifies one unit of one appointment.
type UnitRef struct {
	AppointmentID int64
	UnitNumber    int
}

// DriverID returns the driver bound to the group, or nil when unassigned.
func (g *TaskGroup) DriverID() *int64 {
	if len(g.Tasks) == 0 {
		return nil
	}
	return g.Tasks[0].DriverID
}

// Assigned reports whether the group is bound to a driver.
func (g *TaskGroup) Assigned() bool {
	return g.DriverID() != nil
}

// Status returns the group's notification status. Tasks in a group move
// together, so the first task is representative.
func (g *TaskGroup) Status() NotificationStatus {
	if len(g.Tasks) == 0 {
		return NotifyNone
	}
	return g.Tasks[0].Status
}

// LastNotifiedDriverID returns the driver who received the most recent offer.
func (g *TaskGroup) LastNotifiedDriverID() *int64 {
	if len(g.Tasks) == 0 {
		return nil
	}
	return g.Tasks[0].LastNotifiedDriverID
}

// NotificationSentAt returns when the most recent offer went out.
func (g *TaskGroup) NotificationSentAt() *time.Time {
	if len(g.Tasks) == 0 {
		return nil
	}
	return g.Tasks[0].NotificationSentAt
}

// ExcludedDriverIDs returns the union of declined driver ids across the
// group's tasks, deduplicated, preserving first-seen order.
func (g *TaskGroup) ExcludedDriverIDs() []int64 {
	seen := make(map[int64]struct{})
	var out []int64
	for _, t := range g.Tasks {
		for _, id := range t.DeclinedDriverIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// ExternalIDs returns the provider task ids of the group in task order.
func (g *TaskGroup) ExternalIDs() []string {
	ids := make([]string, 0, len(g.Tasks))
	for _, t := range g.Tasks {
		ids = append(ids, t.ExternalID)
	}
	return ids
}

// State derives the group's assignment state from its persisted fields.
func (g *TaskGroup) State() UnitState {
	switch g.Status() {
	case NotifyAccepted:
		return StateAccepted
	case NotifyPendingReconfirm:
		return StatePendingReconfirm
	case NotifyPendingPartner:
		return StatePendingPartner
	case NotifyNoDrivers:
		return StateExhausted
	case NotifyDeclined:
		return StateDeclined
	case NotifySent:
		return StateOffered
	default:
		return StateUnassigned
	}
}
