package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"driver-dispatch-service/internal/domain"
)

// DriverRepo represents the driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// Get - returns driver by its ID, or nil if it does not exist.
func (r *DriverRepo) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	var d domain.Driver
	err := r.db.QueryRow(ctx, `
        SELECT id, external_worker_id, name, phone, active
        FROM drivers
        WHERE id = $1
    `, id).Scan(&d.ID, &d.ExternalWorkerID, &d.Name, &d.Phone, &d.Active)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	if err := r.loadCommitments(ctx, []*domain.Driver{&d}); err != nil {
		return nil, err
	}
	return &d, nil
}

// NetworkPool returns the general delivery-network drivers with their
// accepted commitments loaded.
func (r *DriverRepo) NetworkPool(ctx context.Context) ([]domain.Driver, error) {
	return r.pool(ctx, `
        SELECT id, external_worker_id, name, phone, active
        FROM drivers
        WHERE moving_partner_id IS NULL
        ORDER BY id
    `)
}

// PartnerPool returns the approved drivers of one moving partner with
// their accepted commitments loaded.
func (r *DriverRepo) PartnerPool(ctx context.Context, partnerID int64) ([]domain.Driver, error) {
	return r.pool(ctx, `
        SELECT id, external_worker_id, name, phone, active
        FROM drivers
        WHERE moving_partner_id = $1 AND approved
        ORDER BY id
    `, partnerID)
}

func (r *DriverRepo) pool(ctx context.Context, q string, args ...any) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.ExternalWorkerID, &d.Name, &d.Phone, &d.Active); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Driver, len(drivers))
	for i := range drivers {
		refs[i] = &drivers[i]
	}
	if err := r.loadCommitments(ctx, refs); err != nil {
		return nil, err
	}
	return drivers, nil
}

// loadCommitments attaches each driver's accepted task commitments,
// one appointment per commitment.
func (r *DriverRepo) loadCommitments(ctx context.Context, drivers []*domain.Driver) error {
	if len(drivers) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(drivers))
	byID := make(map[int64]*domain.Driver, len(drivers))
	for _, d := range drivers {
		ids = append(ids, d.ID)
		byID[d.ID] = d
	}

	rows, err := r.db.Query(ctx, `
        SELECT DISTINCT t.driver_id, a.id, a.scheduled_at
        FROM tasks t
        JOIN appointments a ON a.id = t.appointment_id
        WHERE t.driver_id = ANY($1) AND t.notification_status = $2
        ORDER BY a.scheduled_at
    `, ids, string(domain.NotifyAccepted))
	if err != nil {
		return fmt.Errorf("load commitments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var driverID int64
		var c domain.Commitment
		if err := rows.Scan(&driverID, &c.AppointmentID, &c.ScheduledAt); err != nil {
			return err
		}
		if d := byID[driverID]; d != nil {
			d.Commitments = append(d.Commitments, c)
		}
	}
	return rows.Err()
}
