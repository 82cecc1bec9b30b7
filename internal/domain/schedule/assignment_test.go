package schedule

import (
	"testing"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

func TestNewAssignment_Success(t *testing.T) {
	scheduleID := common.NewScheduleID()
	memberID := common.NewMemberID()
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	a, err := NewAssignment(scheduleID, date, "ATM_MORNING", "Morning", memberID)
	if err != nil {
		t.Fatalf("NewAssignment() error = %v", err)
	}
	if !a.IsActive() {
		t.Error("new assignment should be active")
	}

	a.Supersede()
	if a.IsActive() {
		t.Error("superseded assignment should not be active")
	}
}

func TestAssignment_Reassign(t *testing.T) {
	scheduleID := common.NewScheduleID()
	original := common.NewMemberID()
	replacement := common.NewMemberID()
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	a, err := NewAssignment(scheduleID, date, "ATM_MORNING", "Morning", original)
	if err != nil {
		t.Fatalf("NewAssignment() error = %v", err)
	}

	a.Reassign(replacement)
	if a.MemberID() != replacement {
		t.Errorf("MemberID() = %v, want %v", a.MemberID(), replacement)
	}
}

func TestNewAssignment_ValidationErrors(t *testing.T) {
	memberID := common.NewMemberID()
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	if _, err := NewAssignment("", date, "ATM_MORNING", "Morning", memberID); err == nil {
		t.Error("expected error when schedule_id is empty")
	}
	if _, err := NewAssignment(common.NewScheduleID(), date, "", "Morning", memberID); err == nil {
		t.Error("expected error when kind is empty")
	}
	if _, err := NewAssignment(common.NewScheduleID(), date, "ATM_MORNING", "Morning", ""); err == nil {
		t.Error("expected error when member_id is empty")
	}
}
