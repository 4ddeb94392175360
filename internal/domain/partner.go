package domain

// MovingPartner represents a partner company whose drivers cover unit 1 of
// full-service appointments. Read-only to the orchestrator.
type MovingPartner struct {
	ID             int64
	ExternalTeamID string
	Name           string
	Mode           PartnerMode
}
