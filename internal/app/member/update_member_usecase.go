package member

import (
	"context"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
)

type UpdateMemberUsecase struct {
	memberRepo member.MemberRepository
}

func NewUpdateMemberUsecase(memberRepo member.MemberRepository) *UpdateMemberUsecase {
	return &UpdateMemberUsecase{
		memberRepo: memberRepo,
	}
}

type UpdateMemberInput struct {
	TeamID      string
	MemberID    string
	DisplayName string
	OfficeDays  []time.Weekday
	Email       string
	IsActive    bool
}

type UpdateMemberOutput struct {
	MemberID    string   `json:"member_id"`
	TeamID      string   `json:"team_id"`
	DisplayName string   `json:"display_name"`
	OfficeDays  []string `json:"office_days"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	IsActive    bool     `json:"is_active"`
	UpdatedAt   string   `json:"updated_at"`
}

func (u *UpdateMemberUsecase) Execute(ctx context.Context, input UpdateMemberInput) (*UpdateMemberOutput, error) {
	teamID, err := common.ParseTeamID(input.TeamID)
	if err != nil {
		return nil, err
	}

	memberID, err := common.ParseMemberID(input.MemberID)
	if err != nil {
		return nil, err
	}

	m, err := u.memberRepo.FindByID(ctx, teamID, memberID)
	if err != nil {
		return nil, err
	}

	officeDays := member.NewOfficeDays(input.OfficeDays...)
	if err := m.UpdateDetails(input.DisplayName, officeDays, input.Email, input.IsActive); err != nil {
		return nil, err
	}

	if err := u.memberRepo.Save(ctx, m); err != nil {
		return nil, err
	}

	return &UpdateMemberOutput{
		MemberID:    m.MemberID().String(),
		TeamID:      m.TeamID().String(),
		DisplayName: m.DisplayName(),
		OfficeDays:  formatOfficeDays(m.OfficeDays()),
		Email:       m.Email(),
		Role:        string(m.Role()),
		IsActive:    m.IsActive(),
		UpdatedAt:   m.UpdatedAt().Format(time.RFC3339),
	}, nil
}

func formatOfficeDays(days member.OfficeDays) []string {
	names := []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
	result := make([]string, 0, len(days))
	for _, d := range names {
		if days.Contains(d) {
			result = append(result, d.String())
		}
	}
	return result
}
