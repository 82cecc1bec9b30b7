package availability

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// UnavailablePeriodRepository defines persistence for UnavailablePeriod.
type UnavailablePeriodRepository interface {
	Save(ctx context.Context, p *UnavailablePeriod) error
	Delete(ctx context.Context, teamID common.TeamID, id common.UnavailablePeriodID) error
	FindByMemberID(ctx context.Context, teamID common.TeamID, memberID common.MemberID) ([]*UnavailablePeriod, error)
	FindByTeamID(ctx context.Context, teamID common.TeamID) ([]*UnavailablePeriod, error)
}
