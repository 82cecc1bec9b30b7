package member

import (
	"context"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
)

// MemberRepository defines the interface for member persistence
type MemberRepository interface {
	Save(ctx context.Context, m *member.Member) error
	FindByID(ctx context.Context, teamID common.TeamID, memberID common.MemberID) (*member.Member, error)
	FindByTeamID(ctx context.Context, teamID common.TeamID) ([]*member.Member, error)
	FindActiveByTeamID(ctx context.Context, teamID common.TeamID) ([]*member.Member, error)
	FindByEmail(ctx context.Context, teamID common.TeamID, email string) (*member.Member, error)
	ExistsByEmail(ctx context.Context, teamID common.TeamID, email string) (bool, error)
}

// CreateMemberInput represents the input for creating a member
type CreateMemberInput struct {
	TeamID      common.TeamID
	DisplayName string
	OfficeDays  []time.Weekday
	Email       string
	Role        member.Role
}

// CreateMemberUsecase handles the member creation use case
type CreateMemberUsecase struct {
	memberRepo MemberRepository
}

// NewCreateMemberUsecase creates a new CreateMemberUsecase
func NewCreateMemberUsecase(memberRepo MemberRepository) *CreateMemberUsecase {
	return &CreateMemberUsecase{
		memberRepo: memberRepo,
	}
}

// Execute creates a new member
func (uc *CreateMemberUsecase) Execute(ctx context.Context, input CreateMemberInput) (*member.Member, error) {
	if input.Email != "" {
		exists, err := uc.memberRepo.ExistsByEmail(ctx, input.TeamID, input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewConflictError("this email is already registered")
		}
	}

	newMember, err := member.NewMember(
		input.TeamID,
		input.DisplayName,
		member.NewOfficeDays(input.OfficeDays...),
		input.Email,
		input.Role,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.memberRepo.Save(ctx, newMember); err != nil {
		return nil, err
	}

	return newMember, nil
}

// ListMembersInput represents the input for listing members
type ListMembersInput struct {
	TeamID   common.TeamID
	IsActive *bool // nil means no filter
}

// ListMembersUsecase handles the member listing use case
type ListMembersUsecase struct {
	memberRepo MemberRepository
}

// NewListMembersUsecase creates a new ListMembersUsecase
func NewListMembersUsecase(memberRepo MemberRepository) *ListMembersUsecase {
	return &ListMembersUsecase{
		memberRepo: memberRepo,
	}
}

// Execute retrieves members for a team with optional active filtering
func (uc *ListMembersUsecase) Execute(ctx context.Context, input ListMembersInput) ([]*member.Member, error) {
	members, err := uc.memberRepo.FindByTeamID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if input.IsActive == nil {
		return members, nil
	}

	filtered := make([]*member.Member, 0, len(members))
	for _, m := range members {
		if m.IsActive() == *input.IsActive {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// GetMemberInput represents the input for getting a member
type GetMemberInput struct {
	TeamID   common.TeamID
	MemberID common.MemberID
}

// GetMemberUsecase handles the member retrieval use case
type GetMemberUsecase struct {
	memberRepo MemberRepository
}

// NewGetMemberUsecase creates a new GetMemberUsecase
func NewGetMemberUsecase(memberRepo MemberRepository) *GetMemberUsecase {
	return &GetMemberUsecase{
		memberRepo: memberRepo,
	}
}

// Execute retrieves a member by ID
func (uc *GetMemberUsecase) Execute(ctx context.Context, input GetMemberInput) (*member.Member, error) {
	return uc.memberRepo.FindByID(ctx, input.TeamID, input.MemberID)
}

// DeleteMemberInput represents the input for deleting a member
type DeleteMemberInput struct {
	TeamID   common.TeamID
	MemberID common.MemberID
}

// DeleteMemberUsecase handles the member deletion use case
type DeleteMemberUsecase struct {
	memberRepo MemberRepository
}

// NewDeleteMemberUsecase creates a new DeleteMemberUsecase
func NewDeleteMemberUsecase(memberRepo MemberRepository) *DeleteMemberUsecase {
	return &DeleteMemberUsecase{
		memberRepo: memberRepo,
	}
}

// Execute deletes a member (soft delete). The scheduler never destroys
// a member outright; existing Assignments and ledger counts survive.
func (uc *DeleteMemberUsecase) Execute(ctx context.Context, input DeleteMemberInput) error {
	m, err := uc.memberRepo.FindByID(ctx, input.TeamID, input.MemberID)
	if err != nil {
		return err
	}

	m.Delete()

	return uc.memberRepo.Save(ctx, m)
}

// BulkImportMemberInput represents a single member for bulk import
type BulkImportMemberInput struct {
	DisplayName string
	OfficeDays  []time.Weekday
	Email       string
}

// BulkImportMembersInput represents the input for bulk importing members
type BulkImportMembersInput struct {
	TeamID  common.TeamID
	Members []BulkImportMemberInput
}

// BulkImportMemberResult represents the result of importing a single member
type BulkImportMemberResult struct {
	DisplayName string `json:"display_name"`
	Success     bool   `json:"success"`
	MemberID    string `json:"member_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BulkImportMembersOutput represents the output of bulk importing members
type BulkImportMembersOutput struct {
	TotalCount   int                      `json:"total_count"`
	SuccessCount int                      `json:"success_count"`
	FailedCount  int                      `json:"failed_count"`
	Results      []BulkImportMemberResult `json:"results"`
}

// BulkImportMembersUsecase handles the bulk member import use case
type BulkImportMembersUsecase struct {
	memberRepo MemberRepository
}

// NewBulkImportMembersUsecase creates a new BulkImportMembersUsecase
func NewBulkImportMembersUsecase(memberRepo MemberRepository) *BulkImportMembersUsecase {
	return &BulkImportMembersUsecase{
		memberRepo: memberRepo,
	}
}

// Execute imports multiple members at once
func (uc *BulkImportMembersUsecase) Execute(ctx context.Context, input BulkImportMembersInput) (*BulkImportMembersOutput, error) {
	results := make([]BulkImportMemberResult, 0, len(input.Members))
	successCount := 0
	failedCount := 0

	for _, memberInput := range input.Members {
		result := BulkImportMemberResult{
			DisplayName: memberInput.DisplayName,
		}

		newMember, err := member.NewMember(
			input.TeamID,
			memberInput.DisplayName,
			member.NewOfficeDays(memberInput.OfficeDays...),
			memberInput.Email,
			member.RoleMember,
		)
		if err != nil {
			result.Success = false
			result.Error = err.Error()
			failedCount++
			results = append(results, result)
			continue
		}

		if err := uc.memberRepo.Save(ctx, newMember); err != nil {
			result.Success = false
			result.Error = "failed to save member"
			failedCount++
			results = append(results, result)
			continue
		}

		result.Success = true
		result.MemberID = newMember.MemberID().String()
		successCount++
		results = append(results, result)
	}

	return &BulkImportMembersOutput{
		TotalCount:   len(input.Members),
		SuccessCount: successCount,
		FailedCount:  failedCount,
		Results:      results,
	}, nil
}
