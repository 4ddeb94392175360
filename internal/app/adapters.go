package app

import (
	"context"
	"fmt"

	"driver-dispatch-service/internal/domain"
	"driver-dispatch-service/internal/gateway/notify"
	"driver-dispatch-service/internal/gateway/onfleet"
)

// offerNotifier adapts the SMS gateway to the assignment engine's
// notification port.
type offerNotifier struct {
	client *notify.Client
}

func newOfferNotifier(client *notify.Client) *offerNotifier {
	return &offerNotifier{client: client}
}

func (n *offerNotifier) SendOffer(ctx context.Context, d domain.Driver, appt *domain.Appointment, unit int) error {
	return n.client.SendOffer(ctx, notify.Offer{
		Phone:         d.Phone,
		DriverName:    d.Name,
		AppointmentID: appt.ID,
		UnitNumber:    unit,
		ScheduledAt:   appt.ScheduledAt,
		Address:       appt.Address,
	})
}

func (n *offerNotifier) SendPartnerAction(ctx context.Context, p domain.MovingPartner, appt *domain.Appointment) error {
	return n.client.SendPartnerAction(ctx, notify.PartnerAction{
		PartnerName:   p.Name,
		AppointmentID: appt.ID,
		ScheduledAt:   appt.ScheduledAt,
		Address:       appt.Address,
	})
}

func (n *offerNotifier) SendPartnerOutcome(ctx context.Context, p domain.MovingPartner, appt *domain.Appointment, outcome domain.UnitOutcome) error {
	return n.client.SendPartnerOutcome(ctx, notify.PartnerOutcome{
		PartnerName:   p.Name,
		AppointmentID: appt.ID,
		Outcome:       string(outcome),
	})
}

// providerTaskCreator adapts the task-routing provider to the booking
// sequence creation port.
type providerTaskCreator struct {
	client *onfleet.Client
}

func newProviderTaskCreator(client *onfleet.Client) *providerTaskCreator {
	return &providerTaskCreator{client: client}
}

func (c *providerTaskCreator) CreateTask(ctx context.Context, appt *domain.Appointment, unit int, leg string) (string, error) {
	snap, err := c.client.CreateTask(ctx, onfleet.TaskParams{
		Destination:   appt.Address,
		CompleteAfter: appt.ScheduledAt.UnixMilli(),
		Notes:         fmt.Sprintf("appointment %d unit %d %s", appt.ID, unit, leg),
		Metadata: map[string]any{
			"appointment_id": appt.ID,
			"unit_number":    unit,
			"leg":            leg,
		},
	})
	if err != nil {
		return "", err
	}
	return snap.ID, nil
}
