package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditEntryRepository implements the schedule package's
// AuditEntryRepository for PostgreSQL. Candidates and Warnings are
// stored as jsonb: they are written once per entry and only ever read
// back whole, so there is no query need to index into them.
type AuditEntryRepository struct {
	db *pgxpool.Pool
}

// NewAuditEntryRepository creates a new AuditEntryRepository.
func NewAuditEntryRepository(db *pgxpool.Pool) *AuditEntryRepository {
	return &AuditEntryRepository{db: db}
}

// SaveAll persists every entry produced by one generation or swap apply.
func (r *AuditEntryRepository) SaveAll(ctx context.Context, teamID common.TeamID, scheduleID common.ScheduleID, entries []scheduling.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (
			audit_entry_id, team_id, schedule_id, date, week, kind, shift_label,
			chosen_member_id, candidates, tie_break_reason, warnings, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	tx := GetTx(ctx, r.db)
	for _, e := range entries {
		candidates, err := json.Marshal(e.Candidates)
		if err != nil {
			return fmt.Errorf("failed to marshal audit candidates: %w", err)
		}
		warnings, err := json.Marshal(e.Warnings)
		if err != nil {
			return fmt.Errorf("failed to marshal audit warnings: %w", err)
		}
		_, err = tx.Exec(ctx, query,
			e.ID.String(), teamID.String(), scheduleID.String(), nullTime(e.Date), nullTime(e.Week),
			string(e.Kind), e.ShiftLabel, e.ChosenMemberID.String(), candidates, e.TieBreakReason, warnings, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save audit entry %s: %w", e.ID.String(), err)
		}
	}
	return nil
}

// FindByScheduleID returns every audit entry recorded for a schedule.
func (r *AuditEntryRepository) FindByScheduleID(ctx context.Context, teamID common.TeamID, scheduleID common.ScheduleID) ([]scheduling.AuditEntry, error) {
	query := `
		SELECT audit_entry_id, schedule_id, date, week, kind, shift_label,
			chosen_member_id, candidates, tie_break_reason, warnings, created_at
		FROM audit_entries
		WHERE team_id = $1 AND schedule_id = $2
		ORDER BY created_at
	`
	rows, err := GetTx(ctx, r.db).Query(ctx, query, teamID.String(), scheduleID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var out []scheduling.AuditEntry
	for rows.Next() {
		var (
			idStr, scheduleIDStr, kind, shiftLabel, chosenMemberIDStr, tieBreakReason string
			date, week                                                               sql.NullTime
			candidates, warnings                                                     []byte
			createdAt                                                                time.Time
		)
		if err := rows.Scan(&idStr, &scheduleIDStr, &date, &week, &kind, &shiftLabel,
			&chosenMemberIDStr, &candidates, &tieBreakReason, &warnings, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry row: %w", err)
		}

		var candidateRanks []scheduling.CandidateRank
		if err := json.Unmarshal(candidates, &candidateRanks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit candidates: %w", err)
		}
		var warningStrs []string
		if err := json.Unmarshal(warnings, &warningStrs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit warnings: %w", err)
		}

		out = append(out, scheduling.AuditEntry{
			ID:             common.AuditEntryID(idStr),
			ScheduleID:     common.ScheduleID(scheduleIDStr),
			Date:           date.Time,
			Week:           week.Time,
			Kind:           scheduling.TaskKind(kind),
			ShiftLabel:     shiftLabel,
			ChosenMemberID: common.MemberID(chosenMemberIDStr),
			Candidates:     candidateRanks,
			TieBreakReason: tieBreakReason,
			Warnings:       warningStrs,
			CreatedAt:      createdAt,
		})
	}
	return out, rows.Err()
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
