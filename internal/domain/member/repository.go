package member

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// MemberRepository defines the interface for Member persistence.
// Every method is scoped by team_id; no query crosses team boundaries.
type MemberRepository interface {
	// Save saves a member (insert or update)
	Save(ctx context.Context, member *Member) error

	// FindByID finds a member by ID within a team
	FindByID(ctx context.Context, teamID common.TeamID, memberID common.MemberID) (*Member, error)

	// FindByTeamID finds all members within a team.
	// Returns only records where deleted_at IS NULL.
	FindByTeamID(ctx context.Context, teamID common.TeamID) ([]*Member, error)

	// FindActiveByTeamID finds all active members within a team
	FindActiveByTeamID(ctx context.Context, teamID common.TeamID) ([]*Member, error)

	// FindByEmail finds a member by email within a team
	FindByEmail(ctx context.Context, teamID common.TeamID, email string) (*Member, error)

	// Delete deletes a member (physical delete).
	// Prefer Member.Delete() for the usual soft-delete path; this is
	// reserved for administrative cleanup.
	Delete(ctx context.Context, teamID common.TeamID, memberID common.MemberID) error

	// ExistsByEmail checks if a member with the given email exists within a team
	ExistsByEmail(ctx context.Context, teamID common.TeamID, email string) (bool, error)
}
