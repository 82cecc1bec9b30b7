package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UnavailablePeriodRepository implements
// availability.UnavailablePeriodRepository for PostgreSQL.
type UnavailablePeriodRepository struct {
	db *pgxpool.Pool
}

// NewUnavailablePeriodRepository creates a new UnavailablePeriodRepository.
func NewUnavailablePeriodRepository(db *pgxpool.Pool) *UnavailablePeriodRepository {
	return &UnavailablePeriodRepository{db: db}
}

// Save saves an unavailable period (insert or update).
func (r *UnavailablePeriodRepository) Save(ctx context.Context, p *availability.UnavailablePeriod) error {
	query := `
		INSERT INTO unavailable_periods (
			unavailable_period_id, team_id, member_id, start_date, end_date, reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (unavailable_period_id) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			reason = EXCLUDED.reason
	`
	_, err := GetTx(ctx, r.db).Exec(ctx, query,
		p.ID().String(), p.TeamID().String(), p.MemberID().String(),
		p.StartDate(), p.EndDate(), nullString(p.Reason()), p.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save unavailable period: %w", err)
	}
	return nil
}

// Delete removes an unavailable period.
func (r *UnavailablePeriodRepository) Delete(ctx context.Context, teamID common.TeamID, id common.UnavailablePeriodID) error {
	query := `DELETE FROM unavailable_periods WHERE team_id = $1 AND unavailable_period_id = $2`
	result, err := GetTx(ctx, r.db).Exec(ctx, query, teamID.String(), id.String())
	if err != nil {
		return fmt.Errorf("failed to delete unavailable period: %w", err)
	}
	if result.RowsAffected() == 0 {
		return common.NewNotFoundError("unavailable_period", id.String())
	}
	return nil
}

// FindByMemberID returns every unavailable period for one member.
func (r *UnavailablePeriodRepository) FindByMemberID(ctx context.Context, teamID common.TeamID, memberID common.MemberID) ([]*availability.UnavailablePeriod, error) {
	query := `
		SELECT unavailable_period_id, team_id, member_id, start_date, end_date, reason, created_at
		FROM unavailable_periods
		WHERE team_id = $1 AND member_id = $2
		ORDER BY start_date
	`
	return r.query(ctx, query, teamID.String(), memberID.String())
}

// FindByTeamID returns every unavailable period recorded for a team.
func (r *UnavailablePeriodRepository) FindByTeamID(ctx context.Context, teamID common.TeamID) ([]*availability.UnavailablePeriod, error) {
	query := `
		SELECT unavailable_period_id, team_id, member_id, start_date, end_date, reason, created_at
		FROM unavailable_periods
		WHERE team_id = $1
		ORDER BY start_date
	`
	return r.query(ctx, query, teamID.String())
}

func (r *UnavailablePeriodRepository) query(ctx context.Context, query string, args ...interface{}) ([]*availability.UnavailablePeriod, error) {
	rows, err := GetTx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query unavailable periods: %w", err)
	}
	defer rows.Close()

	var out []*availability.UnavailablePeriod
	for rows.Next() {
		var (
			idStr, teamIDStr, memberIDStr string
			startDate, endDate, createdAt time.Time
			reason                        sql.NullString
		)
		if err := rows.Scan(&idStr, &teamIDStr, &memberIDStr, &startDate, &endDate, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan unavailable period row: %w", err)
		}
		p, err := availability.ReconstructUnavailablePeriod(
			common.UnavailablePeriodID(idStr), common.TeamID(teamIDStr), common.MemberID(memberIDStr),
			startDate, endDate, stringValue(reason), createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct unavailable period: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
