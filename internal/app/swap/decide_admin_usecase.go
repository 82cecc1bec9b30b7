package swap

import (
	"context"
	"log/slog"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/services"
	domainswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/swap"
)

// FairnessCountRepository mirrors the schedule package's repository so
// the swap package does not need to import it for a single interface.
type FairnessCountRepository interface {
	ReplaceWindow(ctx context.Context, teamID common.TeamID, rows []ledger.FairnessCount) error
	FindByTeamID(ctx context.Context, teamID common.TeamID) ([]ledger.FairnessCount, error)
}

// DecideAdminInput carries the admin's response to a peer-accepted swap.
type DecideAdminInput struct {
	TeamID   string
	SwapID   string
	Decision domainswap.AdminDecision
}

// DecideAdminUsecase records the admin's decision. Approval applies the
// swap in the same transaction: the target Assignment is reassigned and
// the fairness ledger is adjusted by exactly one decrement (old member)
// and one increment (new member).
type DecideAdminUsecase struct {
	swapRepo       domainswap.SwapRepository
	assignmentRepo schedule.AssignmentRepository
	fairnessRepo   FairnessCountRepository
	txManager      services.TxManager
}

// NewDecideAdminUsecase constructs a DecideAdminUsecase.
func NewDecideAdminUsecase(
	swapRepo domainswap.SwapRepository,
	assignmentRepo schedule.AssignmentRepository,
	fairnessRepo FairnessCountRepository,
	txManager services.TxManager,
) *DecideAdminUsecase {
	return &DecideAdminUsecase{
		swapRepo: swapRepo, assignmentRepo: assignmentRepo,
		fairnessRepo: fairnessRepo, txManager: txManager,
	}
}

// Execute records the admin's decision and, on approval, applies it.
func (uc *DecideAdminUsecase) Execute(ctx context.Context, input DecideAdminInput) (*domainswap.Swap, error) {
	teamID, err := common.ParseTeamID(input.TeamID)
	if err != nil {
		return nil, err
	}
	swapID, err := common.ParseSwapID(input.SwapID)
	if err != nil {
		return nil, err
	}

	s, err := uc.swapRepo.FindByID(ctx, teamID, swapID)
	if err != nil {
		return nil, err
	}
	if err := s.DecideAdmin(input.Decision); err != nil {
		return nil, err
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if s.State() == domainswap.StateApplied {
			if err := uc.applySwap(ctx, teamID, s); err != nil {
				return err
			}
		}
		return uc.swapRepo.Save(ctx, s)
	})
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}

	slog.Info("swap decided",
		"team_id", teamID.String(), "swap_id", swapID.String(),
		"admin_decision", string(input.Decision), "state", string(s.State()),
	)
	return s, nil
}

func (uc *DecideAdminUsecase) applySwap(ctx context.Context, teamID common.TeamID, s *domainswap.Swap) error {
	assignment, err := uc.assignmentRepo.FindByID(ctx, s.AssignmentID())
	if err != nil {
		return err
	}
	oldMemberID := assignment.MemberID()
	kind := assignment.Kind()

	assignment.Reassign(s.ProposedMemberID())
	if err := uc.assignmentRepo.SaveAll(ctx, []*schedule.Assignment{assignment}); err != nil {
		return err
	}

	rows, err := uc.fairnessRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return err
	}
	var windowStart, windowEnd time.Time
	if len(rows) > 0 {
		windowStart, windowEnd = rows[0].WindowStart, rows[0].WindowEnd
	}
	l := ledger.LoadSnapshot(rows, windowStart, windowEnd)

	weeklyRole := scheduling.TaskKind(kind).IsWeekly()
	if !weeklyRole || l.Count(oldMemberID, kind) > 0 {
		l.Decrement(oldMemberID, kind)
	}
	l.Increment(s.ProposedMemberID(), kind)

	return uc.fairnessRepo.ReplaceWindow(ctx, teamID, l.Snapshot())
}
