package schedule

import (
	"context"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// ScheduleRepository defines persistence for Schedule.
type ScheduleRepository interface {
	Save(ctx context.Context, s *Schedule) error
	FindByID(ctx context.Context, teamID common.TeamID, id common.ScheduleID) (*Schedule, error)
	FindByTeamID(ctx context.Context, teamID common.TeamID) ([]*Schedule, error)
}

// AssignmentRepository defines persistence for Assignment.
type AssignmentRepository interface {
	SaveAll(ctx context.Context, assignments []*Assignment) error
	FindByScheduleID(ctx context.Context, scheduleID common.ScheduleID) ([]*Assignment, error)
	FindByID(ctx context.Context, id common.AssignmentID) (*Assignment, error)
	// FindActiveByTeamSince returns every active Assignment for teamID
	// with Date in (since, asOf], for ledger seeding and recompute.
	FindActiveByTeamSince(ctx context.Context, teamID common.TeamID, since, asOf time.Time) ([]*Assignment, error)
}
