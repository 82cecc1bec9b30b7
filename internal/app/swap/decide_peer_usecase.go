package swap

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	domainswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/swap"
)

// DecidePeerInput carries the requested peer's response to a swap.
type DecidePeerInput struct {
	TeamID   string
	SwapID   string
	Decision domainswap.PeerDecision
}

// DecidePeerUsecase records the peer's acceptance or rejection. It never
// applies the swap; only DecideAdminUsecase does, once the admin also
// approves.
type DecidePeerUsecase struct {
	swapRepo domainswap.SwapRepository
}

// NewDecidePeerUsecase constructs a DecidePeerUsecase.
func NewDecidePeerUsecase(swapRepo domainswap.SwapRepository) *DecidePeerUsecase {
	return &DecidePeerUsecase{swapRepo: swapRepo}
}

// Execute loads the swap, records the peer's decision, and persists it.
func (uc *DecidePeerUsecase) Execute(ctx context.Context, input DecidePeerInput) (*domainswap.Swap, error) {
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
	if err := s.DecidePeer(input.Decision); err != nil {
		return nil, err
	}
	if err := uc.swapRepo.Save(ctx, s); err != nil {
		return nil, common.NewStorageFailureError(err)
	}
	return s, nil
}
