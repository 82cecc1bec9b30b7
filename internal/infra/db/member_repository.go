package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MemberRepository implements member.MemberRepository for PostgreSQL.
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

// Save saves a member (insert or update).
func (r *MemberRepository) Save(ctx context.Context, m *member.Member) error {
	query := `
		INSERT INTO members (
			member_id, team_id, display_name, office_days, email,
			role, is_active, created_at, updated_at, deleted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (member_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			office_days = EXCLUDED.office_days,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at,
			deleted_at = EXCLUDED.deleted_at
	`

	tx := GetTx(ctx, r.db)
	_, err := tx.Exec(ctx, query,
		m.MemberID().String(),
		m.TeamID().String(),
		m.DisplayName(),
		officeDaysToInts(m.OfficeDays()),
		nullString(m.Email()),
		string(m.Role()),
		m.IsActive(),
		m.CreatedAt(),
		m.UpdatedAt(),
		m.DeletedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

// FindByID finds a member by ID within a team.
func (r *MemberRepository) FindByID(ctx context.Context, teamID common.TeamID, memberID common.MemberID) (*member.Member, error) {
	query := `
		SELECT member_id, team_id, display_name, office_days, email,
			role, is_active, created_at, updated_at, deleted_at
		FROM members
		WHERE team_id = $1 AND member_id = $2 AND deleted_at IS NULL
	`
	row := GetTx(ctx, r.db).QueryRow(ctx, query, teamID.String(), memberID.String())
	m, err := scanMember(row)
	if err == pgx.ErrNoRows {
		return nil, common.NewNotFoundError("member", memberID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	return m, nil
}

// FindByTeamID finds every non-deleted member within a team.
func (r *MemberRepository) FindByTeamID(ctx context.Context, teamID common.TeamID) ([]*member.Member, error) {
	query := `
		SELECT member_id, team_id, display_name, office_days, email,
			role, is_active, created_at, updated_at, deleted_at
		FROM members
		WHERE team_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`
	return r.queryMembers(ctx, query, teamID.String())
}

// FindActiveByTeamID finds every active member within a team.
func (r *MemberRepository) FindActiveByTeamID(ctx context.Context, teamID common.TeamID) ([]*member.Member, error) {
	query := `
		SELECT member_id, team_id, display_name, office_days, email,
			role, is_active, created_at, updated_at, deleted_at
		FROM members
		WHERE team_id = $1 AND is_active = true AND deleted_at IS NULL
		ORDER BY created_at
	`
	return r.queryMembers(ctx, query, teamID.String())
}

// FindByEmail finds a member by email within a team.
func (r *MemberRepository) FindByEmail(ctx context.Context, teamID common.TeamID, email string) (*member.Member, error) {
	query := `
		SELECT member_id, team_id, display_name, office_days, email,
			role, is_active, created_at, updated_at, deleted_at
		FROM members
		WHERE team_id = $1 AND email = $2 AND deleted_at IS NULL
	`
	row := GetTx(ctx, r.db).QueryRow(ctx, query, teamID.String(), email)
	m, err := scanMember(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find member by email: %w", err)
	}
	return m, nil
}

// Delete physically deletes a member. Prefer Member.Delete() for the
// usual soft-delete path; this is reserved for administrative cleanup.
func (r *MemberRepository) Delete(ctx context.Context, teamID common.TeamID, memberID common.MemberID) error {
	query := `DELETE FROM members WHERE team_id = $1 AND member_id = $2`
	result, err := GetTx(ctx, r.db).Exec(ctx, query, teamID.String(), memberID.String())
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return common.NewNotFoundError("member", memberID.String())
	}
	return nil
}

// ExistsByEmail checks whether a member with the given email exists within a team.
func (r *MemberRepository) ExistsByEmail(ctx context.Context, teamID common.TeamID, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE team_id = $1 AND email = $2 AND deleted_at IS NULL)`
	var exists bool
	if err := GetTx(ctx, r.db).QueryRow(ctx, query, teamID.String(), email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check member existence by email: %w", err)
	}
	return exists, nil
}

func (r *MemberRepository) queryMembers(ctx context.Context, query string, args ...interface{}) ([]*member.Member, error) {
	rows, err := GetTx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []*member.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}

// rowScanner abstracts over pgx.Row and pgx.Rows, both of which expose Scan.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row rowScanner) (*member.Member, error) {
	var (
		memberIDStr string
		teamIDStr   string
		displayName string
		officeDays  []int32
		email       sql.NullString
		role        string
		isActive    bool
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	if err := row.Scan(
		&memberIDStr, &teamIDStr, &displayName, &officeDays, &email,
		&role, &isActive, &createdAt, &updatedAt, &deletedAt,
	); err != nil {
		return nil, err
	}

	var deletedAtPtr *time.Time
	if deletedAt.Valid {
		deletedAtPtr = &deletedAt.Time
	}

	return member.ReconstructMember(
		common.MemberID(memberIDStr),
		common.TeamID(teamIDStr),
		displayName,
		intsToOfficeDays(officeDays),
		stringValue(email),
		member.Role(role),
		isActive,
		createdAt,
		updatedAt,
		deletedAtPtr,
	)
}

func officeDaysToInts(days member.OfficeDays) []int32 {
	out := make([]int32, 0, len(days))
	for d, present := range days {
		if present {
			out = append(out, int32(d))
		}
	}
	return out
}

func intsToOfficeDays(days []int32) member.OfficeDays {
	set := make(member.OfficeDays, len(days))
	for _, d := range days {
		set[time.Weekday(d)] = true
	}
	return set
}

// nullString converts a string to sql.NullString.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// stringValue converts sql.NullString to string.
func stringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
