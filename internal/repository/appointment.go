package repository

import (
	"context"
	"fmt"

	"driver-dispatch-service/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentRepo represents appointment repository.
type AppointmentRepo struct{ db *pgxpool.Pool }

// NewAppointmentRepo creates a new AppointmentRepo.
func NewAppointmentRepo(db *pgxpool.Pool) *AppointmentRepo { return &AppointmentRepo{db: db} }

// Get - returns appointment by its ID, or nil if it does not exist.
func (r *AppointmentRepo) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.QueryRow(ctx, `
        SELECT id, plan, scheduled_at, address, moving_partner_id, num_units
        FROM appointments
        WHERE id = $1
    `, id).Scan(&a.ID, &a.Plan, &a.ScheduledAt, &a.Address, &a.MovingPartnerID, &a.NumUnits)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment %d: %w", id, err)
	}
	return &a, nil
}
