package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/services"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/timeutil"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/infra/clock"
)

// RecomputeLedgerInput identifies the team and point in time to rebuild
// the ledger as of.
type RecomputeLedgerInput struct {
	TeamID string
	AsOf   time.Time
}

// RecomputeLedgerOutput is the freshly rebuilt window snapshot.
type RecomputeLedgerOutput struct {
	Rows []ledger.FairnessCount
}

// RecomputeLedgerUsecase exposes ledger.RecomputeFromHistory as a
// first-class operator action: an operator can repair a ledger that
// has drifted from Assignment history.
type RecomputeLedgerUsecase struct {
	assignmentRepo schedule.AssignmentRepository
	fairnessRepo   FairnessCountRepository
	windowDays     int
	clock          services.Clock
}

// NewRecomputeLedgerUsecase constructs a RecomputeLedgerUsecase.
func NewRecomputeLedgerUsecase(assignmentRepo schedule.AssignmentRepository, fairnessRepo FairnessCountRepository, windowDays int) *RecomputeLedgerUsecase {
	return &RecomputeLedgerUsecase{
		assignmentRepo: assignmentRepo, fairnessRepo: fairnessRepo,
		windowDays: windowDays, clock: clock.NewRealClock(),
	}
}

// Execute rebuilds and persists the (member, kind) counts from
// Assignment history within the rolling window ending at AsOf. A zero
// AsOf defaults to now, for an "as of today" recompute.
func (uc *RecomputeLedgerUsecase) Execute(ctx context.Context, input RecomputeLedgerInput) (*RecomputeLedgerOutput, error) {
	teamID, err := common.ParseTeamID(input.TeamID)
	if err != nil {
		return nil, err
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = uc.clock.Now()
	}

	windowStart := asOf.AddDate(0, 0, -uc.windowDays)
	assignments, err := uc.assignmentRepo.FindActiveByTeamSince(ctx, teamID, windowStart, asOf)
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}

	records := make([]ledger.AssignmentRecord, 0, len(assignments))
	for _, a := range assignments {
		rec := ledger.AssignmentRecord{MemberID: a.MemberID(), Kind: a.Kind(), Date: a.Date()}
		if scheduling.TaskKind(a.Kind()).IsWeekly() {
			weekStart, _ := timeutil.WeekBucket(a.Date())
			rec.Week = weekStart
		}
		records = append(records, rec)
	}

	l := ledger.RecomputeFromHistory(records, uc.windowDays, asOf)
	rows := l.Snapshot()

	if err := uc.fairnessRepo.ReplaceWindow(ctx, teamID, rows); err != nil {
		return nil, common.NewStorageFailureError(err)
	}

	slog.Info("ledger recomputed", "team_id", teamID.String(), "row_count", len(rows))

	return &RecomputeLedgerOutput{Rows: rows}, nil
}
