package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	domainswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/swap"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SwapRepository implements swap.SwapRepository for PostgreSQL.
type SwapRepository struct {
	db *pgxpool.Pool
}

// NewSwapRepository creates a new SwapRepository.
func NewSwapRepository(db *pgxpool.Pool) *SwapRepository {
	return &SwapRepository{db: db}
}

// Save saves a swap (insert or update).
func (r *SwapRepository) Save(ctx context.Context, s *domainswap.Swap) error {
	query := `
		INSERT INTO swaps (
			swap_id, team_id, assignment_id, requested_by, proposed_member_id, reason,
			peer_decision, admin_decision, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (swap_id) DO UPDATE SET
			peer_decision = EXCLUDED.peer_decision,
			admin_decision = EXCLUDED.admin_decision,
			updated_at = EXCLUDED.updated_at
	`
	_, err := GetTx(ctx, r.db).Exec(ctx, query,
		s.ID().String(), s.TeamID().String(), s.AssignmentID().String(),
		s.RequestedBy().String(), s.ProposedMemberID().String(), nullString(s.Reason()),
		string(s.PeerDecision()), string(s.AdminDecision()), s.CreatedAt(), s.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save swap: %w", err)
	}
	return nil
}

// FindByID finds a swap by ID within a team.
func (r *SwapRepository) FindByID(ctx context.Context, teamID common.TeamID, id common.SwapID) (*domainswap.Swap, error) {
	query := `
		SELECT swap_id, team_id, assignment_id, requested_by, proposed_member_id, reason,
			peer_decision, admin_decision, created_at, updated_at
		FROM swaps
		WHERE team_id = $1 AND swap_id = $2
	`
	row := GetTx(ctx, r.db).QueryRow(ctx, query, teamID.String(), id.String())
	s, err := scanSwap(row)
	if err == pgx.ErrNoRows {
		return nil, common.NewNotFoundError("swap", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find swap: %w", err)
	}
	return s, nil
}

// FindByAssignmentID returns every swap ever proposed for an assignment.
func (r *SwapRepository) FindByAssignmentID(ctx context.Context, teamID common.TeamID, assignmentID common.AssignmentID) ([]*domainswap.Swap, error) {
	query := `
		SELECT swap_id, team_id, assignment_id, requested_by, proposed_member_id, reason,
			peer_decision, admin_decision, created_at, updated_at
		FROM swaps
		WHERE team_id = $1 AND assignment_id = $2
		ORDER BY created_at
	`
	rows, err := GetTx(ctx, r.db).Query(ctx, query, teamID.String(), assignmentID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query swaps: %w", err)
	}
	defer rows.Close()

	var out []*domainswap.Swap
	for rows.Next() {
		s, err := scanSwap(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan swap row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSwap(row rowScanner) (*domainswap.Swap, error) {
	var (
		idStr, teamIDStr, assignmentIDStr, requestedByStr, proposedMemberIDStr string
		reason                                                                sql.NullString
		peerDecision, adminDecision                                           string
		createdAt, updatedAt                                                  time.Time
	)
	if err := row.Scan(&idStr, &teamIDStr, &assignmentIDStr, &requestedByStr, &proposedMemberIDStr,
		&reason, &peerDecision, &adminDecision, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return domainswap.ReconstructSwap(
		common.SwapID(idStr), common.TeamID(teamIDStr), common.AssignmentID(assignmentIDStr),
		common.MemberID(requestedByStr), common.MemberID(proposedMemberIDStr), stringValue(reason),
		domainswap.PeerDecision(peerDecision), domainswap.AdminDecision(adminDecision), createdAt, updatedAt,
	)
}
