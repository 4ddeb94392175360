package assignment

import (
	"context"
	"fmt"

	"driver-dispatch-service/internal/apperr"
	"driver-dispatch-service/internal/domain"
	"driver-dispatch-service/internal/logx"
)

// taskLegs are the linked legs created per unit. They share the unit
// number and always bind to one driver together.
var taskLegs = []string{"pickup", "customer", "return"}

// CreateTaskSequence creates the appointment's provider tasks and their
// local rows, one group of linked legs per unit. The idempotency guard
// rejects a concurrent creation run for the same appointment; a completed
// earlier run makes this a read-only no-op returning the existing groups.
func (s *Service) CreateTaskSequence(ctx context.Context, appointmentID int64) ([]domain.TaskGroup, error) {
	if err := s.guard.Acquire(appointmentID); err != nil {
		return nil, fmt.Errorf("%w: task creation already in progress for appointment %d",
			apperr.ErrConflict, appointmentID)
	}
	defer s.guard.Release(appointmentID)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	appt, err := s.appts.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, fmt.Errorf("%w: appointment %d", apperr.ErrNotFound, appointmentID)
	}
	if appt.NumUnits <= 0 {
		return nil, fmt.Errorf("%w: appointment %d has no units", apperr.ErrInvalid, appointmentID)
	}

	exists, err := s.tasks.HasTasks(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.tasks.TaskGroups(ctx, appointmentID)
	}

	tasks := make([]domain.Task, 0, appt.NumUnits*len(taskLegs))
	for unit := 1; unit <= appt.NumUnits; unit++ {
		for _, leg := range taskLegs {
			externalID, err := s.creator.CreateTask(ctx, appt, unit, leg)
			if err != nil {
				// Rows already created stand; the provider mirror is
				// reconciled manually from this log line.
				s.logger.Error("provider task creation failed",
					logx.Int64("appointment_id", appointmentID),
					logx.Int("unit", unit),
					logx.String("leg", leg),
					logx.Err(err),
				)
				return nil, fmt.Errorf("create provider task unit %d %s: %w", unit, leg, err)
			}
			tasks = append(tasks, domain.Task{
				AppointmentID: appointmentID,
				ExternalID:    externalID,
				UnitNumber:    unit,
				Status:        domain.NotifyNone,
			})
		}
	}

	if err := s.tasks.InsertTasks(ctx, tasks); err != nil {
		return nil, err
	}

	s.logger.Info("task sequence created",
		logx.Int64("appointment_id", appointmentID),
		logx.Int("units", appt.NumUnits),
		logx.Int("tasks", len(tasks)),
	)
	return s.tasks.TaskGroups(ctx, appointmentID)
}
