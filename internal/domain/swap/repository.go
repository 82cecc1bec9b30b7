package swap

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// SwapRepository defines persistence for Swap.
type SwapRepository interface {
	Save(ctx context.Context, s *Swap) error
	FindByID(ctx context.Context, teamID common.TeamID, id common.SwapID) (*Swap, error)
	FindByAssignmentID(ctx context.Context, teamID common.TeamID, assignmentID common.AssignmentID) ([]*Swap, error)
}
