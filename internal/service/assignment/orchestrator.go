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

// Service is the appointment-level assignment orchestrator. It fans unit
// assignment out across an appointment's task groups according to the
// plan policy and aggregates per-unit results; one unit's failure never
// aborts its siblings.
type Service struct {
	appts            appointmentStore
	partners         partnerStore
	drivers          driverStore
	tasks            taskStore
	machine          *UnitMachine
	router           TaskRouter
	creator          TaskCreator
	notifier         Notifier
	guard            *IdempotencyGuard
	logger           logx.Logger
	now              func() time.Time
	acceptanceWindow time.Duration
	operationTimeout time.Duration
}

// NewService creates the orchestrator.
func NewService(
	appts appointmentStore,
	partners partnerStore,
	drivers driverStore,
	tasks taskStore,
	machine *UnitMachine,
	router TaskRouter,
	creator TaskCreator,
	notifier Notifier,
	guard *IdempotencyGuard,
	acceptanceWindow time.Duration,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if acceptanceWindow <= 0 {
		acceptanceWindow = 30 * time.Minute
	}
	return &Service{
		appts:            appts,
		partners:         partners,
		drivers:          drivers,
		tasks:            tasks,
		machine:          machine,
		router:           router,
		creator:          creator,
		notifier:         notifier,
		guard:            guard,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		acceptanceWindow: acceptanceWindow,
		operationTimeout: timeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// loadAppointment resolves the appointment, its partner (when the plan
// routes unit 1 through one), and its task groups.
func (s *Service) loadAppointment(ctx context.Context, appointmentID int64) (*domain.Appointment, *domain.MovingPartner, []domain.TaskGroup, error) {
	appt, err := s.appts.Get(ctx, appointmentID)
	if err != nil {
		return nil, nil, nil, err
	}
	if appt == nil {
		return nil, nil, nil, fmt.Errorf("%w: appointment %d", apperr.ErrNotFound, appointmentID)
	}

	var partner *domain.MovingPartner
	if appt.FullService() {
		partner, err = s.partners.Get(ctx, *appt.MovingPartnerID)
		if err != nil {
			return nil, nil, nil, err
		}
		if partner == nil {
			return nil, nil, nil, fmt.Errorf("%w: moving partner %d", apperr.ErrNotFound, *appt.MovingPartnerID)
		}
	}

	groups, err := s.tasks.TaskGroups(ctx, appointmentID)
	if err != nil {
		return nil, nil, nil, err
	}
	return appt, partner, groups, nil
}

func (s *Service) loadDriver(ctx context.Context, driverID int64) (*domain.Driver, error) {
	driver, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver %d", apperr.ErrNotFound, driverID)
	}
	return driver, nil
}

// RunInitialAssignment offers every unassigned unit of the appointment to
// its first candidate. Full-Service sends unit 1 through the moving
// partner; every other unit and all DIY units use the delivery network.
// Units already bound, pending reconfirmation, or pending a manual
// partner decision are skipped, which makes re-runs idempotent.
func (s *Service) RunInitialAssignment(ctx context.Context, appointmentID int64) ([]domain.AssignmentResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	appt, partner, groups, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: appointment %d has no tasks", apperr.ErrNotFound, appointmentID)
	}

	results := make([]domain.AssignmentResult, 0, len(groups))
	for i := range groups {
		group := &groups[i]
		if skipped, res := s.skipResult(group); skipped {
			results = append(results, res)
			continue
		}

		unitPartner := partner
		if group.UnitNumber != 1 {
			unitPartner = nil
		}

		if unitPartner != nil && unitPartner.Mode == domain.PartnerModeManual {
			results = append(results, s.manualPartnerUnit(ctx, appt, group, unitPartner))
			continue
		}

		res := s.machine.Offer(ctx, appt, group, unitPartner, true)
		if unitPartner != nil {
			// One outcome notification per cycle; skipped units never
			// reach this point on a re-run.
			if err := s.notifier.SendPartnerOutcome(ctx, *unitPartner, appt, res.Status); err != nil {
				s.logger.Error("partner outcome notification failed",
					logx.Int64("appointment_id", appt.ID),
					logx.Int64("partner_id", unitPartner.ID),
					logx.Err(err),
				)
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// skipResult reports whether the group is skipped on an orchestrator pass
// and, if so, the result entry describing why.
func (s *Service) skipResult(group *domain.TaskGroup) (bool, domain.AssignmentResult) {
	switch {
	case group.Assigned():
		return true, domain.AssignmentResult{
			UnitNumber: group.UnitNumber,
			Status:     domain.OutcomeAlreadyAssigned,
			DriverID:   group.DriverID(),
		}
	case group.Status() == domain.NotifyPendingReconfirm:
		return true, domain.AssignmentResult{
			UnitNumber: group.UnitNumber,
			Status:     domain.OutcomePendingReconfirm,
			DriverID:   group.LastNotifiedDriverID(),
		}
	case group.Status() == domain.NotifyPendingPartner:
		return true, domain.AssignmentResult{
			UnitNumber: group.UnitNumber,
			Status:     domain.OutcomeManualPending,
		}
	default:
		return false, domain.AssignmentResult{}
	}
}

// manualPartnerUnit handles a MANUAL-mode partner: the unit's tasks move
// to the partner's team container and the partner receives an
// action-required message instead of a worker offer. Terminal pending
// outcome, not an error.
func (s *Service) manualPartnerUnit(
	ctx context.Context,
	appt *domain.Appointment,
	group *domain.TaskGroup,
	partner *domain.MovingPartner,
) domain.AssignmentResult {
	for _, taskID := range group.ExternalIDs() {
		if err := s.router.AssignToTeam(ctx, taskID, partner.ExternalTeamID); err != nil {
			s.logger.Error("team container assignment failed",
				logx.String("task_id", taskID),
				logx.Int64("partner_id", partner.ID),
				logx.Err(err),
			)
			return domain.AssignmentResult{
				UnitNumber:      group.UnitNumber,
				Status:          domain.OutcomeError,
				MovingPartnerID: &partner.ID,
				Message:         fmt.Sprintf("provider routing: %v", err),
			}
		}
	}

	if err := s.notifier.SendPartnerAction(ctx, *partner, appt); err != nil {
		s.logger.Error("partner action notification failed",
			logx.Int64("appointment_id", appt.ID),
			logx.Int64("partner_id", partner.ID),
			logx.Err(err),
		)
		return domain.AssignmentResult{
			UnitNumber:      group.UnitNumber,
			Status:          domain.OutcomeNotifyFailed,
			MovingPartnerID: &partner.ID,
			Message:         "partner notification failed",
		}
	}

	if err := s.tasks.WithTx(ctx, func(tx assigntx.Repository) error {
		return tx.SetGroupStatus(ctx, appt.ID, group.UnitNumber, domain.NotifyPendingPartner)
	}); err != nil {
		return domain.AssignmentResult{
			UnitNumber:      group.UnitNumber,
			Status:          domain.OutcomeError,
			MovingPartnerID: &partner.ID,
			Message:         err.Error(),
		}
	}

	return domain.AssignmentResult{
		UnitNumber:      group.UnitNumber,
		Status:          domain.OutcomeManualPending,
		MovingPartnerID: &partner.ID,
	}
}

// Accept records a driver's acceptance of every unit currently offered to
// them on the appointment.
func (s *Service) Accept(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	appt, _, groups, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	driver, err := s.loadDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	var results []domain.AssignmentResult
	for i := range groups {
		group := &groups[i]
		last := group.LastNotifiedDriverID()
		if group.Status() != domain.NotifySent || last == nil || *last != driverID {
			continue
		}
		res, err := s.machine.Accept(ctx, appt, group, driver)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no pending offer for driver %d", apperr.ErrInvalid, driverID)
	}
	return results, nil
}

// Decline records a driver's decline and escalates each affected unit to
// the next candidate.
func (s *Service) Decline(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	appt, partner, groups, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	driver, err := s.loadDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	var results []domain.AssignmentResult
	for i := range groups {
		group := &groups[i]
		last := group.LastNotifiedDriverID()
		if group.Status() != domain.NotifySent || last == nil || *last != driverID {
			continue
		}
		res, err := s.machine.Decline(ctx, appt, group, driver, s.partnerForUnit(partner, group.UnitNumber))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no pending offer for driver %d", apperr.ErrInvalid, driverID)
	}
	return results, nil
}

// Cancel lets an accepted driver withdraw from every unit they hold on
// the appointment and restarts the candidate search for each.
func (s *Service) Cancel(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	appt, partner, groups, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	driver, err := s.loadDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	var results []domain.AssignmentResult
	for i := range groups {
		group := &groups[i]
		bound := group.DriverID()
		if group.Status() != domain.NotifyAccepted || bound == nil || *bound != driverID {
			continue
		}
		res, err := s.machine.Cancel(ctx, appt, group, driver, s.partnerForUnit(partner, group.UnitNumber))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: driver %d holds no accepted unit", apperr.ErrInvalid, driverID)
	}
	return results, nil
}

// Reconfirm re-confirms the previously accepted driver on units pending
// reconfirmation after a schedule change.
func (s *Service) Reconfirm(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	appt, _, groups, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	driver, err := s.loadDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	var results []domain.AssignmentResult
	for i := range groups {
		group := &groups[i]
		if group.Status() != domain.NotifyPendingReconfirm {
			continue
		}
		res, err := s.machine.Reconfirm(ctx, appt, group, driver)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no tasks pending reconfirmation", apperr.ErrInvalid)
	}
	return results, nil
}

// RetrySweep runs the lazy expiry rule over one appointment's units.
func (s *Service) RetrySweep(ctx context.Context, appointmentID int64) ([]domain.AssignmentResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.sweepAppointment(ctx, appointmentID)
}

func (s *Service) sweepAppointment(ctx context.Context, appointmentID int64) ([]domain.AssignmentResult, error) {
	appt, partner, groups, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.AssignmentResult, 0, len(groups))
	for i := range groups {
		group := &groups[i]
		results = append(results, s.machine.Sweep(ctx, appt, group, s.partnerForUnit(partner, group.UnitNumber)))
	}
	return results, nil
}

// SweepAll finds every unit with an expired offer and retries each.
// Used by the background worker.
func (s *Service) SweepAll(ctx context.Context) ([]domain.AssignmentResult, error) {
	refs, err := s.tasks.SweepCandidates(ctx, s.now().Add(-s.acceptanceWindow))
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	var results []domain.AssignmentResult
	for _, ref := range refs {
		if _, ok := seen[ref.AppointmentID]; ok {
			continue
		}
		seen[ref.AppointmentID] = struct{}{}

		res, err := s.sweepAppointment(ctx, ref.AppointmentID)
		if err != nil {
			s.logger.Error("retry sweep failed for appointment",
				logx.Int64("appointment_id", ref.AppointmentID),
				logx.Err(err),
			)
			continue
		}
		results = append(results, res...)
	}
	return results, nil
}

func (s *Service) partnerForUnit(partner *domain.MovingPartner, unit int) *domain.MovingPartner {
	if unit == 1 {
		return partner
	}
	return nil
}
