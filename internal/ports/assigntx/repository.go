package assigntx

import (
	"context"
	"time"

	"driver-dispatch-service/internal/domain"
)

// Repository is the task-state repository visible inside one transaction.
// Every method operates on a whole task group so a group never shows a
// partial driver binding.
type Repository interface {
	TaskGroup(ctx context.Context, appointmentID int64, unit int) (*domain.TaskGroup, error)
	MarkOffered(ctx context.Context, appointmentID int64, unit int, driverID int64, at time.Time) error
	MarkAccepted(ctx context.Context, appointmentID int64, unit int, driverID int64, at time.Time) error
	MarkDeclined(ctx context.Context, appointmentID int64, unit int, driverID int64, at time.Time) error
	AppendExclusion(ctx context.Context, appointmentID int64, unit int, driverID int64) error
	SetGroupStatus(ctx context.Context, appointmentID int64, unit int, status domain.NotificationStatus) error
	ClearAssignment(ctx context.Context, appointmentID int64, unit int) error
	InsertReservation(ctx context.Context, r *domain.Reservation) error
	DeleteReservation(ctx context.Context, appointmentID, driverID int64) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
