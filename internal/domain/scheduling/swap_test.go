package scheduling

import (
	"testing"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
)

// S5: proposing a swap to a member who already holds the paired slot on
// the same day is rejected for same-day distinctness; proposing to a
// free, available member succeeds.
func TestValidateSwap_S5_SameDayDistinctnessThenSuccess(t *testing.T) {
	teamID := common.NewTeamID()
	a := weekdayMember(t, teamID, "A")
	b := weekdayMember(t, teamID, "B")
	c := weekdayMember(t, teamID, "C")
	members := []*member.Member{a, b, c}

	scheduleID := common.NewScheduleID()
	tuesday := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)

	morningAssignment, err := schedule.NewAssignment(scheduleID, tuesday, string(ATMMorning), "Morning", a.MemberID())
	if err != nil {
		t.Fatalf("NewAssignment() error = %v", err)
	}
	midnightAssignment, err := schedule.NewAssignment(scheduleID, tuesday, string(ATMMidnight), "Mid/Night", b.MemberID())
	if err != nil {
		t.Fatalf("NewAssignment() error = %v", err)
	}

	store := availability.NewStore(nil)
	cfg := DefaultSchedulingConfig()

	// Propose swapping Tuesday morning from A to B, who already works
	// Tuesday midnight -> same-day distinctness violation.
	err = ValidateSwap(ValidateSwapInput{
		Assignment:       morningAssignment,
		ProposedMemberID: b.MemberID(),
		OtherAssignments: []*schedule.Assignment{midnightAssignment},
		Members:          members,
		Store:            store,
		Config:           cfg,
	})
	if err == nil {
		t.Fatal("expected same-day-distinctness violation")
	}
	domainErr, ok := err.(*common.DomainError)
	if !ok || domainErr.Code != "CONSTRAINT_VIOLATION:same-day-distinctness" {
		t.Fatalf("unexpected error: %v", err)
	}

	// Propose swapping to C instead, who is free that day -> success.
	err = ValidateSwap(ValidateSwapInput{
		Assignment:       morningAssignment,
		ProposedMemberID: c.MemberID(),
		OtherAssignments: []*schedule.Assignment{midnightAssignment},
		Members:          members,
		Store:            store,
		Config:           cfg,
	})
	if err != nil {
		t.Fatalf("expected swap to C to succeed, got error = %v", err)
	}
}

func TestValidateSwap_RestRuleViolation(t *testing.T) {
	teamID := common.NewTeamID()
	a := weekdayMember(t, teamID, "A")
	b := weekdayMember(t, teamID, "B")
	members := []*member.Member{a, b}

	scheduleID := common.NewScheduleID()
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)

	tuesdayMorning, err := schedule.NewAssignment(scheduleID, tuesday, string(ATMMorning), "Morning", a.MemberID())
	if err != nil {
		t.Fatalf("NewAssignment() error = %v", err)
	}
	mondayMidnightForB, err := schedule.NewAssignment(scheduleID, monday, string(ATMMidnight), "Mid/Night", b.MemberID())
	if err != nil {
		t.Fatalf("NewAssignment() error = %v", err)
	}

	err = ValidateSwap(ValidateSwapInput{
		Assignment:       tuesdayMorning,
		ProposedMemberID: b.MemberID(),
		OtherAssignments: []*schedule.Assignment{mondayMidnightForB},
		Members:          members,
		Store:            availability.NewStore(nil),
		Config:           DefaultSchedulingConfig(),
	})
	if err == nil {
		t.Fatal("expected rest-rule violation")
	}
	domainErr, ok := err.(*common.DomainError)
	if !ok || domainErr.Code != "CONSTRAINT_VIOLATION:rest-rule" {
		t.Fatalf("unexpected error: %v", err)
	}
}
