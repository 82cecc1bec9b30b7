package db

import (
	"context"
	"fmt"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FairnessCountRepository implements the schedule package's
// FairnessCountRepository for PostgreSQL.
type FairnessCountRepository struct {
	db *pgxpool.Pool
}

// NewFairnessCountRepository creates a new FairnessCountRepository.
func NewFairnessCountRepository(db *pgxpool.Pool) *FairnessCountRepository {
	return &FairnessCountRepository{db: db}
}

// ReplaceWindow overwrites every FairnessCount row for teamID, atomically
// with the rest of a generation or swap-application commit.
func (r *FairnessCountRepository) ReplaceWindow(ctx context.Context, teamID common.TeamID, rows []ledger.FairnessCount) error {
	tx := GetTx(ctx, r.db)

	if _, err := tx.Exec(ctx, `DELETE FROM fairness_counts WHERE team_id = $1`, teamID.String()); err != nil {
		return fmt.Errorf("failed to clear fairness counts: %w", err)
	}

	insert := `
		INSERT INTO fairness_counts (team_id, member_id, kind, count, window_start, window_end)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, row := range rows {
		_, err := tx.Exec(ctx, insert, teamID.String(), row.MemberID.String(), row.Kind, row.Count, row.WindowStart, row.WindowEnd)
		if err != nil {
			return fmt.Errorf("failed to insert fairness count: %w", err)
		}
	}
	return nil
}

// FindByTeamID returns the current fairness snapshot for a team.
func (r *FairnessCountRepository) FindByTeamID(ctx context.Context, teamID common.TeamID) ([]ledger.FairnessCount, error) {
	query := `
		SELECT member_id, kind, count, window_start, window_end
		FROM fairness_counts
		WHERE team_id = $1
	`
	rows, err := GetTx(ctx, r.db).Query(ctx, query, teamID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query fairness counts: %w", err)
	}
	defer rows.Close()

	var out []ledger.FairnessCount
	for rows.Next() {
		var (
			memberIDStr        string
			kind                string
			count               int
			windowStart, windowEnd time.Time
		)
		if err := rows.Scan(&memberIDStr, &kind, &count, &windowStart, &windowEnd); err != nil {
			return nil, fmt.Errorf("failed to scan fairness count row: %w", err)
		}
		out = append(out, ledger.FairnessCount{
			MemberID:    common.MemberID(memberIDStr),
			Kind:        kind,
			Count:       count,
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
		})
	}
	return out, rows.Err()
}
