package responses

import "time"

// Event is a single driver response event from the messaging webhook
// mirror topic.
type Event struct {
	AppointmentID int64     `json:"appointment_id"`
	DriverID      int64     `json:"driver_id"`
	Action        string    `json:"action"`
	OccurredAt    time.Time `json:"occurred_at"`
}
