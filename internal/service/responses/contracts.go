//go:generate mockgen -source=contracts.go -destination=responses_mocks_test.go -package=responses_test

package responses

import (
	"context"

	"driver-dispatch-service/internal/domain"
)

// AssignmentPort abstracts the subset of orchestrator operations the
// Processor invokes when handling driver response events
type AssignmentPort interface {
	Accept(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
	Decline(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
	Cancel(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
	Reconfirm(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
}
