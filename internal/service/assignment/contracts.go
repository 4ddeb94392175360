//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=assignment

package assignment

import (
	"context"
	"time"

	"driver-dispatch-service/internal/domain"
	"driver-dispatch-service/internal/ports/assigntx"
)

// CandidateSelector returns the ordered eligible drivers for one unit.
type CandidateSelector interface {
	SelectCandidates(ctx context.Context, appt *domain.Appointment, unit int, excludeDriverIDs []int64, partnerID *int64) ([]domain.Driver, error)
}

// TaskRouter moves provider tasks between containers. Calls are idempotent
// at the task level; a failure on one task of a group does not roll back
// siblings already moved.
type TaskRouter interface {
	AssignToTeam(ctx context.Context, taskID, teamID string) error
	AssignToWorker(ctx context.Context, taskID, workerID string) error
	Unassign(ctx context.Context, taskID string) error
}

// TaskCreator creates provider tasks during booking-sequence creation.
type TaskCreator interface {
	CreateTask(ctx context.Context, appt *domain.Appointment, unit int, leg string) (string, error)
}

// Notifier delivers offers and partner messages. Only success/failure is
// visible here; content formatting lives behind the gateway.
type Notifier interface {
	SendOffer(ctx context.Context, d domain.Driver, appt *domain.Appointment, unit int) error
	SendPartnerAction(ctx context.Context, p domain.MovingPartner, appt *domain.Appointment) error
	SendPartnerOutcome(ctx context.Context, p domain.MovingPartner, appt *domain.Appointment, outcome domain.UnitOutcome) error
}

type appointmentStore interface {
	Get(ctx context.Context, id int64) (*domain.Appointment, error)
}

type partnerStore interface {
	Get(ctx context.Context, id int64) (*domain.MovingPartner, error)
}

type driverStore interface {
	Get(ctx context.Context, id int64) (*domain.Driver, error)
}

type taskStore interface {
	assigntx.Runner
	TaskGroups(ctx context.Context, appointmentID int64) ([]domain.TaskGroup, error)
	SweepCandidates(ctx context.Context, olderThan time.Time) ([]domain.UnitRef, error)
	HasTasks(ctx context.Context, appointmentID int64) (bool, error)
	InsertTasks(ctx context.Context, tasks []domain.Task) error
}

type counter interface {
	Inc()
}
