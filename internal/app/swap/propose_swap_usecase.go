// Package swap wires the Swap aggregate and the swap Validator into
// operator-facing usecases: propose, peer decision, admin decision
// (which applies the swap on approval), and lookup.
package swap

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
	domainswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/swap"
)

// ProposeSwapInput is the semantic swap request.
type ProposeSwapInput struct {
	TeamID           string
	AssignmentID     string
	RequestedBy      string
	ProposedMemberID string
	Reason           string
}

// ProposeSwapUsecase re-validates a proposed replacement against every
// constraint the assignment's kind carries and, if it holds, records the
// request pending peer review.
type ProposeSwapUsecase struct {
	assignmentRepo  schedule.AssignmentRepository
	memberRepo      member.MemberRepository
	unavailableRepo availability.UnavailablePeriodRepository
	swapRepo        domainswap.SwapRepository
	config          scheduling.SchedulingConfig
}

// NewProposeSwapUsecase constructs a ProposeSwapUsecase.
func NewProposeSwapUsecase(
	assignmentRepo schedule.AssignmentRepository,
	memberRepo member.MemberRepository,
	unavailableRepo availability.UnavailablePeriodRepository,
	swapRepo domainswap.SwapRepository,
	config scheduling.SchedulingConfig,
) *ProposeSwapUsecase {
	return &ProposeSwapUsecase{
		assignmentRepo: assignmentRepo, memberRepo: memberRepo,
		unavailableRepo: unavailableRepo, swapRepo: swapRepo, config: config,
	}
}

// Execute loads the target assignment and re-runs eligibility for the
// proposed member before recording the swap request.
func (uc *ProposeSwapUsecase) Execute(ctx context.Context, input ProposeSwapInput) (*domainswap.Swap, error) {
	teamID, err := common.ParseTeamID(input.TeamID)
	if err != nil {
		return nil, err
	}
	assignmentID, err := common.ParseAssignmentID(input.AssignmentID)
	if err != nil {
		return nil, err
	}
	requestedBy, err := common.ParseMemberID(input.RequestedBy)
	if err != nil {
		return nil, err
	}
	proposedMemberID, err := common.ParseMemberID(input.ProposedMemberID)
	if err != nil {
		return nil, err
	}

	assignment, err := uc.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if !assignment.IsActive() {
		return nil, common.NewConstraintViolationError("assignment-not-active", "this assignment is no longer active")
	}

	scheduleAssignments, err := uc.assignmentRepo.FindByScheduleID(ctx, assignment.ScheduleID())
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}
	otherAssignments := make([]*schedule.Assignment, 0, len(scheduleAssignments))
	for _, a := range scheduleAssignments {
		if a.ID() != assignment.ID() {
			otherAssignments = append(otherAssignments, a)
		}
	}

	members, err := uc.memberRepo.FindActiveByTeamID(ctx, teamID)
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}
	periods, err := uc.unavailableRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}
	store := availability.NewStore(periods)

	if err := scheduling.ValidateSwap(scheduling.ValidateSwapInput{
		Assignment:       assignment,
		ProposedMemberID: proposedMemberID,
		OtherAssignments: otherAssignments,
		Members:          members,
		Store:            store,
		Config:           uc.config,
	}); err != nil {
		return nil, err
	}

	s, err := domainswap.NewSwap(teamID, assignmentID, requestedBy, proposedMemberID, input.Reason)
	if err != nil {
		return nil, err
	}
	if err := uc.swapRepo.Save(ctx, s); err != nil {
		return nil, common.NewStorageFailureError(err)
	}
	return s, nil
}
