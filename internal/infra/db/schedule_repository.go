package db

import (
	"context"
	"fmt"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository implements schedule.ScheduleRepository for PostgreSQL.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Save saves a schedule (insert or update).
func (r *ScheduleRepository) Save(ctx context.Context, s *schedule.Schedule) error {
	query := `
		INSERT INTO schedules (
			schedule_id, team_id, start_date, end_date, status,
			seed, fairness_aggressiveness, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (schedule_id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`
	_, err := GetTx(ctx, r.db).Exec(ctx, query,
		s.ID().String(), s.TeamID().String(), s.StartDate(), s.EndDate(), string(s.Status()),
		s.Seed(), s.FairnessAggressiveness(), s.CreatedAt(), s.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}

// FindByID finds a schedule by ID within a team.
func (r *ScheduleRepository) FindByID(ctx context.Context, teamID common.TeamID, id common.ScheduleID) (*schedule.Schedule, error) {
	query := `
		SELECT schedule_id, team_id, start_date, end_date, status,
			seed, fairness_aggressiveness, created_at, updated_at
		FROM schedules
		WHERE team_id = $1 AND schedule_id = $2
	`
	row := GetTx(ctx, r.db).QueryRow(ctx, query, teamID.String(), id.String())
	s, err := scanSchedule(row)
	if err == pgx.ErrNoRows {
		return nil, common.NewNotFoundError("schedule", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find schedule: %w", err)
	}
	return s, nil
}

// FindByTeamID finds every schedule within a team, most recent first.
func (r *ScheduleRepository) FindByTeamID(ctx context.Context, teamID common.TeamID) ([]*schedule.Schedule, error) {
	query := `
		SELECT schedule_id, team_id, start_date, end_date, status,
			seed, fairness_aggressiveness, created_at, updated_at
		FROM schedules
		WHERE team_id = $1
		ORDER BY start_date DESC
	`
	rows, err := GetTx(ctx, r.db).Query(ctx, query, teamID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var out []*schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSchedule(row rowScanner) (*schedule.Schedule, error) {
	var (
		idStr, teamIDStr, status string
		startDate, endDate       time.Time
		seed                     int64
		aggressiveness           int
		createdAt, updatedAt     time.Time
	)
	if err := row.Scan(&idStr, &teamIDStr, &startDate, &endDate, &status, &seed, &aggressiveness, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return schedule.ReconstructSchedule(
		common.ScheduleID(idStr), common.TeamID(teamIDStr), startDate, endDate,
		schedule.Status(status), seed, aggressiveness, createdAt, updatedAt,
	)
}

// AssignmentRepository implements schedule.AssignmentRepository for PostgreSQL.
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// SaveAll upserts every assignment, each as its own statement within
// whatever transaction the caller has open on ctx.
func (r *AssignmentRepository) SaveAll(ctx context.Context, assignments []*schedule.Assignment) error {
	query := `
		INSERT INTO assignments (
			assignment_id, schedule_id, date, kind, shift_label, member_id, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (assignment_id) DO UPDATE SET
			member_id = EXCLUDED.member_id,
			status = EXCLUDED.status
	`
	tx := GetTx(ctx, r.db)
	for _, a := range assignments {
		_, err := tx.Exec(ctx, query,
			a.ID().String(), a.ScheduleID().String(), a.Date(), a.Kind(), a.ShiftLabel(),
			a.MemberID().String(), string(a.Status()), a.CreatedAt(),
		)
		if err != nil {
			return fmt.Errorf("failed to save assignment %s: %w", a.ID().String(), err)
		}
	}
	return nil
}

// FindByScheduleID finds every assignment belonging to a schedule.
func (r *AssignmentRepository) FindByScheduleID(ctx context.Context, scheduleID common.ScheduleID) ([]*schedule.Assignment, error) {
	query := `
		SELECT assignment_id, schedule_id, date, kind, shift_label, member_id, status, created_at
		FROM assignments
		WHERE schedule_id = $1
		ORDER BY date
	`
	rows, err := GetTx(ctx, r.db).Query(ctx, query, scheduleID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var out []*schedule.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindByID finds a single assignment.
func (r *AssignmentRepository) FindByID(ctx context.Context, id common.AssignmentID) (*schedule.Assignment, error) {
	query := `
		SELECT assignment_id, schedule_id, date, kind, shift_label, member_id, status, created_at
		FROM assignments
		WHERE assignment_id = $1
	`
	row := GetTx(ctx, r.db).QueryRow(ctx, query, id.String())
	a, err := scanAssignment(row)
	if err == pgx.ErrNoRows {
		return nil, common.NewNotFoundError("assignment", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return a, nil
}

// FindActiveByTeamSince returns every active assignment for teamID with
// date in (since, asOf], for ledger seeding and recompute.
func (r *AssignmentRepository) FindActiveByTeamSince(ctx context.Context, teamID common.TeamID, since, asOf time.Time) ([]*schedule.Assignment, error) {
	query := `
		SELECT a.assignment_id, a.schedule_id, a.date, a.kind, a.shift_label, a.member_id, a.status, a.created_at
		FROM assignments a
		JOIN schedules s ON s.schedule_id = a.schedule_id
		WHERE s.team_id = $1 AND a.status = 'active' AND a.date > $2 AND a.date <= $3
		ORDER BY a.date
	`
	rows, err := GetTx(ctx, r.db).Query(ctx, query, teamID.String(), since, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment history: %w", err)
	}
	defer rows.Close()

	var out []*schedule.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAssignment(row rowScanner) (*schedule.Assignment, error) {
	var (
		idStr, scheduleIDStr, kind, shiftLabel, memberIDStr, status string
		date, createdAt                                            time.Time
	)
	if err := row.Scan(&idStr, &scheduleIDStr, &date, &kind, &shiftLabel, &memberIDStr, &status, &createdAt); err != nil {
		return nil, err
	}
	return schedule.ReconstructAssignment(
		common.AssignmentID(idStr), common.ScheduleID(scheduleIDStr), date,
		kind, shiftLabel, common.MemberID(memberIDStr), schedule.AssignmentStatus(status), createdAt,
	)
}
