package assignment

import (
	"context"
	"fmt"
	"time"

	"driver-dispatch-service/internal/apperr"
	"driver-dispatch-service/internal/domain"
	"driver-dispatch-service/internal/logx"
	"driver-dispatch-service/internal/ports/assigntx"
)

// UnitMachine drives the assignment state of one task group: it selects
// the next candidate, issues the offer, records responses, and decides
// escalation. All transitions operate on whole groups.
type UnitMachine struct {
	selector CandidateSelector
	router   TaskRouter
	notifier Notifier
	tasks    taskStore
	logger   logx.Logger
	now      func() time.Time

	acceptanceWindow time.Duration
	reservationSpan  time.Duration
	networkTeamID    string

	offersSent counter
	declines   counter
	exhausted  counter
}

// MachineConfig carries the fixed windows and provider references the
// machine needs.
type MachineConfig struct {
	AcceptanceWindow time.Duration
	ReservationSpan  time.Duration
	NetworkTeamID    string
}

// NewUnitMachine creates a UnitMachine.
func NewUnitMachine(
	sel CandidateSelector,
	router TaskRouter,
	notifier Notifier,
	tasks taskStore,
	cfg MachineConfig,
	logger logx.Logger,
) *UnitMachine {
	if cfg.AcceptanceWindow <= 0 {
		cfg.AcceptanceWindow = 30 * time.Minute
	}
	if cfg.ReservationSpan <= 0 {
		cfg.ReservationSpan = 4 * time.Hour
	}
	return &UnitMachine{
		selector:         sel,
		router:           router,
		notifier:         notifier,
		tasks:            tasks,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		acceptanceWindow: cfg.AcceptanceWindow,
		reservationSpan:  cfg.ReservationSpan,
		networkTeamID:    cfg.NetworkTeamID,
	}
}

// WithCounters attaches optional metric counters.
func (m *UnitMachine) WithCounters(offersSent, declines, exhausted counter) *UnitMachine {
	m.offersSent = offersSent
	m.declines = declines
	m.exhausted = exhausted
	return m
}

func inc(c counter) {
	if c != nil {
		c.Inc()
	}
}

// Offer runs one offer attempt for the group: pick the first eligible
// candidate, route the group's provider tasks to the candidate's
// container (team first when assignTeam is set), then notify. The group
// only advances to offered after the notification goes out.
func (m *UnitMachine) Offer(
	ctx context.Context,
	appt *domain.Appointment,
	group *domain.TaskGroup,
	partner *domain.MovingPartner,
	assignTeam bool,
) domain.AssignmentResult {
	unit := group.UnitNumber

	var partnerID *int64
	teamID := m.networkTeamID
	if partner != nil {
		partnerID = &partner.ID
		teamID = partner.ExternalTeamID
	}

	candidates, err := m.selector.SelectCandidates(ctx, appt, unit, group.ExcludedDriverIDs(), partnerID)
	if err != nil {
		return m.errResult(unit, partnerID, fmt.Errorf("candidate selection: %w", err))
	}
	if len(candidates) == 0 {
		if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
			return tx.SetGroupStatus(ctx, appt.ID, unit, domain.NotifyNoDrivers)
		}); err != nil {
			return m.errResult(unit, partnerID, err)
		}
		inc(m.exhausted)
		m.logger.Warn("no drivers available for unit",
			logx.Int64("appointment_id", appt.ID),
			logx.Int("unit", unit),
		)
		return domain.AssignmentResult{
			UnitNumber:      unit,
			Status:          domain.OutcomeNoDrivers,
			MovingPartnerID: partnerID,
			Message:         "no eligible drivers, admin escalation required",
		}
	}

	candidate := candidates[0]
	if !domain.ValidatePhone(candidate.Phone) {
		m.logger.Warn("candidate has no usable phone",
			logx.Int64("appointment_id", appt.ID),
			logx.Int("unit", unit),
			logx.Int64("driver_id", candidate.ID),
		)
		return domain.AssignmentResult{
			UnitNumber:      unit,
			Status:          domain.OutcomeBlockedNoPhone,
			DriverID:        &candidate.ID,
			MovingPartnerID: partnerID,
			Message:         "candidate driver has no usable phone number",
		}
	}

	// Provider routing. The task must belong to the right team before it
	// can enter a worker container. A failed sibling is reported, never
	// rolled back: the provider mirror may lag the database.
	var routeErr error
	for _, taskID := range group.ExternalIDs() {
		if assignTeam {
			if err := m.router.AssignToTeam(ctx, taskID, teamID); err != nil {
				m.logger.Error("team container assignment failed",
					logx.String("task_id", taskID),
					logx.Int64("driver_id", candidate.ID),
					logx.Err(err),
				)
				if routeErr == nil {
					routeErr = err
				}
				continue
			}
		}
		if err := m.router.AssignToWorker(ctx, taskID, candidate.ExternalWorkerID); err != nil {
			m.logger.Error("worker container assignment failed",
				logx.String("task_id", taskID),
				logx.Int64("driver_id", candidate.ID),
				logx.Err(err),
			)
			if routeErr == nil {
				routeErr = err
			}
		}
	}
	if routeErr != nil {
		return m.errResult(unit, partnerID, fmt.Errorf("provider routing: %w", routeErr))
	}

	if err := m.notifier.SendOffer(ctx, candidate, appt, unit); err != nil {
		m.logger.Error("offer notification failed",
			logx.Int64("appointment_id", appt.ID),
			logx.Int("unit", unit),
			logx.Int64("driver_id", candidate.ID),
			logx.Err(err),
		)
		return domain.AssignmentResult{
			UnitNumber:      unit,
			Status:          domain.OutcomeNotifyFailed,
			DriverID:        &candidate.ID,
			MovingPartnerID: partnerID,
			Message:         "offer notification failed",
		}
	}

	sentAt := m.now()
	if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		return tx.MarkOffered(ctx, appt.ID, unit, candidate.ID, sentAt)
	}); err != nil {
		return m.errResult(unit, partnerID, err)
	}

	inc(m.offersSent)
	m.logger.Info("offer sent",
		logx.Int64("appointment_id", appt.ID),
		logx.Int("unit", unit),
		logx.Int64("driver_id", candidate.ID),
	)
	return domain.AssignmentResult{
		UnitNumber:      unit,
		Status:          domain.OutcomeOfferSent,
		DriverID:        &candidate.ID,
		MovingPartnerID: partnerID,
	}
}

// Accept records a driver's acceptance of an offered group: the driver is
// bound to every task and a slot reservation is created. The binding is
// the authoritative record; a reservation failure is logged only.
func (m *UnitMachine) Accept(
	ctx context.Context,
	appt *domain.Appointment,
	group *domain.TaskGroup,
	driver *domain.Driver,
) (domain.AssignmentResult, error) {
	unit := group.UnitNumber
	last := group.LastNotifiedDriverID()
	if group.Status() != domain.NotifySent || last == nil || *last != driver.ID {
		return domain.AssignmentResult{}, fmt.Errorf("%w: no pending offer for driver %d on unit %d",
			apperr.ErrInvalid, driver.ID, unit)
	}

	acceptedAt := m.now()
	if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		return tx.MarkAccepted(ctx, appt.ID, unit, driver.ID, acceptedAt)
	}); err != nil {
		return m.errResult(unit, nil, err), nil
	}

	// Reservation lives in its own transaction: the driver binding stands
	// even if slot blocking fails.
	if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		return tx.InsertReservation(ctx, &domain.Reservation{
			AppointmentID: appt.ID,
			DriverID:      driver.ID,
			SlotStart:     appt.ScheduledAt,
			SlotEnd:       appt.ScheduledAt.Add(m.reservationSpan),
		})
	}); err != nil {
		m.logger.Error("slot reservation failed",
			logx.Int64("appointment_id", appt.ID),
			logx.Int64("driver_id", driver.ID),
			logx.Err(err),
		)
	}

	m.logger.Info("offer accepted",
		logx.Int64("appointment_id", appt.ID),
		logx.Int("unit", unit),
		logx.Int64("driver_id", driver.ID),
	)
	return domain.AssignmentResult{
		UnitNumber: unit,
		Status:     domain.OutcomeAccepted,
		DriverID:   &driver.ID,
	}, nil
}

// Decline records the driver's decline and immediately escalates to the
// next candidate. The exclusion write commits before any new offer goes
// out so a racing pass cannot re-offer the declining driver.
func (m *UnitMachine) Decline(
	ctx context.Context,
	appt *domain.Appointment,
	group *domain.TaskGroup,
	driver *domain.Driver,
	partner *domain.MovingPartner,
) (domain.AssignmentResult, error) {
	unit := group.UnitNumber
	last := group.LastNotifiedDriverID()
	if group.Status() != domain.NotifySent || last == nil || *last != driver.ID {
		return domain.AssignmentResult{}, fmt.Errorf("%w: no pending offer for driver %d on unit %d",
			apperr.ErrInvalid, driver.ID, unit)
	}

	declinedAt := m.now()
	if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		return tx.MarkDeclined(ctx, appt.ID, unit, driver.ID, declinedAt)
	}); err != nil {
		return m.errResult(unit, nil, err), nil
	}
	inc(m.declines)
	m.logger.Info("offer declined",
		logx.Int64("appointment_id", appt.ID),
		logx.Int("unit", unit),
		logx.Int64("driver_id", driver.ID),
	)

	fresh, err := m.reload(ctx, appt.ID, unit)
	if err != nil {
		return m.errResult(unit, nil, err), nil
	}
	// Tasks already sit in the right team container; only the worker
	// container changes for the next candidate.
	return m.Offer(ctx, appt, fresh, partner, false), nil
}

// Sweep applies the lazy expiry rule: when the most recent offer is older
// than the acceptance window and the group is still unbound, the silent
// driver joins the exclusion set and the next candidate is offered.
// Sweeping a unit that needs no retry is a no-op.
func (m *UnitMachine) Sweep(
	ctx context.Context,
	appt *domain.Appointment,
	group *domain.TaskGroup,
	partner *domain.MovingPartner,
) domain.AssignmentResult {
	unit := group.UnitNumber
	sentAt := group.NotificationSentAt()
	last := group.LastNotifiedDriverID()

	eligible := group.Status() == domain.NotifySent &&
		!group.Assigned() &&
		last != nil &&
		sentAt != nil &&
		m.now().Sub(*sentAt) >= m.acceptanceWindow
	if !eligible {
		return domain.AssignmentResult{
			UnitNumber: unit,
			Status:     domain.OutcomeNoRetryNeeded,
		}
	}

	if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		return tx.AppendExclusion(ctx, appt.ID, unit, *last)
	}); err != nil {
		return m.errResult(unit, nil, err)
	}
	m.logger.Info("offer expired",
		logx.Int64("appointment_id", appt.ID),
		logx.Int("unit", unit),
		logx.Int64("driver_id", *last),
	)

	fresh, err := m.reload(ctx, appt.ID, unit)
	if err != nil {
		return m.errResult(unit, nil, err)
	}
	return m.Offer(ctx, appt, fresh, partner, false)
}

// Cancel lets an accepted driver withdraw: provider tasks return to the
// organization container, the reservation is released, the driver joins
// the exclusion set, and the candidate search restarts.
func (m *UnitMachine) Cancel(
	ctx context.Context,
	appt *domain.Appointment,
	group *domain.TaskGroup,
	driver *domain.Driver,
	partner *domain.MovingPartner,
) (domain.AssignmentResult, error) {
	unit := group.UnitNumber
	bound := group.DriverID()
	if group.Status() != domain.NotifyAccepted || bound == nil || *bound != driver.ID {
		return domain.AssignmentResult{}, fmt.Errorf("%w: driver %d is not assigned to unit %d",
			apperr.ErrInvalid, driver.ID, unit)
	}

	for _, taskID := range group.ExternalIDs() {
		if err := m.router.Unassign(ctx, taskID); err != nil {
			m.logger.Error("provider unassign failed",
				logx.String("task_id", taskID),
				logx.Int64("driver_id", driver.ID),
				logx.Err(err),
			)
		}
	}

	if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		if err := tx.ClearAssignment(ctx, appt.ID, unit); err != nil {
			return err
		}
		if err := tx.AppendExclusion(ctx, appt.ID, unit, driver.ID); err != nil {
			return err
		}
		return tx.DeleteReservation(ctx, appt.ID, driver.ID)
	}); err != nil {
		return m.errResult(unit, nil, err), nil
	}
	m.logger.Info("assignment cancelled",
		logx.Int64("appointment_id", appt.ID),
		logx.Int("unit", unit),
		logx.Int64("driver_id", driver.ID),
	)

	fresh, err := m.reload(ctx, appt.ID, unit)
	if err != nil {
		return m.errResult(unit, nil, err), nil
	}
	// The group left its team container on unassign, so the next offer
	// routes through the team step again.
	return m.Offer(ctx, appt, fresh, partner, true), nil
}

// Reconfirm re-confirms the same previously accepted driver after a
// schedule change. It never escalates to a different driver.
func (m *UnitMachine) Reconfirm(
	ctx context.Context,
	appt *domain.Appointment,
	group *domain.TaskGroup,
	driver *domain.Driver,
) (domain.AssignmentResult, error) {
	unit := group.UnitNumber
	last := group.LastNotifiedDriverID()
	if group.Status() != domain.NotifyPendingReconfirm || last == nil || *last != driver.ID {
		return domain.AssignmentResult{}, fmt.Errorf("%w: no tasks pending reconfirmation", apperr.ErrInvalid)
	}

	acceptedAt := m.now()
	if err := m.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		return tx.MarkAccepted(ctx, appt.ID, unit, driver.ID, acceptedAt)
	}); err != nil {
		return m.errResult(unit, nil, err), nil
	}
	m.logger.Info("assignment reconfirmed",
		logx.Int64("appointment_id", appt.ID),
		logx.Int("unit", unit),
		logx.Int64("driver_id", driver.ID),
	)
	return domain.AssignmentResult{
		UnitNumber: unit,
		Status:     domain.OutcomeAccepted,
		DriverID:   &driver.ID,
	}, nil
}

func (m *UnitMachine) reload(ctx context.Context, appointmentID int64, unit int) (*domain.TaskGroup, error) {
	groups, err := m.tasks.TaskGroups(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].UnitNumber == unit {
			return &groups[i], nil
		}
	}
	return nil, fmt.Errorf("%w: task group %d/%d", apperr.ErrNotFound, appointmentID, unit)
}

func (m *UnitMachine) errResult(unit int, partnerID *int64, err error) domain.AssignmentResult {
	return domain.AssignmentResult{
		UnitNumber:      unit,
		Status:          domain.OutcomeError,
		MovingPartnerID: partnerID,
		Message:         err.Error(),
	}
}
