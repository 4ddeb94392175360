package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"driver-dispatch-service/internal/domain"
)

// PartnerRepo represents the moving partner repository.
type PartnerRepo struct{ db *pgxpool.Pool }

// NewPartnerRepo creates a new PartnerRepo.
func NewPartnerRepo(db *pgxpool.Pool) *PartnerRepo { return &PartnerRepo{db: db} }

// Get - returns moving partner by its ID, or nil if it does not exist.
func (r *PartnerRepo) Get(ctx context.Context, id int64) (*domain.MovingPartner, error) {
	var p domain.MovingPartner
	err := r.db.QueryRow(ctx, `
        SELECT id, external_team_id, name, assignment_mode
        FROM moving_partners
        WHERE id = $1
    `, id).Scan(&p.ID, &p.ExternalTeamID, &p.Name, &p.Mode)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get moving partner %d: %w", id, err)
	}
	return &p, nil
}
