package swap

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	domainswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/swap"
)

// GetSwapInput identifies the swap to look up.
type GetSwapInput struct {
	TeamID string
	SwapID string
}

// GetSwapUsecase answers "what is this swap's current state", since the
// peer/admin decision pair alone does not read as a status without
// resolving Swap.State().
type GetSwapUsecase struct {
	swapRepo domainswap.SwapRepository
}

// NewGetSwapUsecase constructs a GetSwapUsecase.
func NewGetSwapUsecase(swapRepo domainswap.SwapRepository) *GetSwapUsecase {
	return &GetSwapUsecase{swapRepo: swapRepo}
}

// Execute loads the swap by ID.
func (uc *GetSwapUsecase) Execute(ctx context.Context, input GetSwapInput) (*domainswap.Swap, error) {
	teamID, err := common.ParseTeamID(input.TeamID)
	if err != nil {
		return nil, err
	}
	swapID, err := common.ParseSwapID(input.SwapID)
	if err != nil {
		return nil, err
	}
	return uc.swapRepo.FindByID(ctx, teamID, swapID)
}
