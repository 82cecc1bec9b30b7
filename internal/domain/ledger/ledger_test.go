package ledger

import (
	"testing"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

func TestLedger_IncrementDecrement(t *testing.T) {
	l := NewLedger(time.Now().AddDate(0, 0, -90), time.Now())
	member := common.NewMemberID()

	if got := l.Count(member, "ATM_MORNING"); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}

	l.Increment(member, "ATM_MORNING")
	l.Increment(member, "ATM_MORNING")
	l.Increment(member, "ATM_MIDNIGHT")

	if got := l.Count(member, "ATM_MORNING"); got != 2 {
		t.Errorf("Count(ATM_MORNING) = %d, want 2", got)
	}
	if got := l.Total(member); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}

	l.Decrement(member, "ATM_MORNING")
	if got := l.Count(member, "ATM_MORNING"); got != 1 {
		t.Errorf("Count(ATM_MORNING) after decrement = %d, want 1", got)
	}

	// Decrement below zero floors at zero.
	l.Decrement(member, "ATM_MIDNIGHT")
	l.Decrement(member, "ATM_MIDNIGHT")
	if got := l.Count(member, "ATM_MIDNIGHT"); got != 0 {
		t.Errorf("Count(ATM_MIDNIGHT) = %d, want 0", got)
	}
}

func TestRecomputeFromHistory(t *testing.T) {
	asOf := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	member := common.NewMemberID()
	other := common.NewMemberID()

	records := []AssignmentRecord{
		{MemberID: member, Kind: "ATM_MORNING", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{MemberID: member, Kind: "ATM_MORNING", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		// Outside the 90-day window ending asOf.
		{MemberID: member, Kind: "ATM_MORNING", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{MemberID: other, Kind: "ATM_MIDNIGHT", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
	}

	l := RecomputeFromHistory(records, 90, asOf)

	if got := l.Count(member, "ATM_MORNING"); got != 2 {
		t.Errorf("Count(member, ATM_MORNING) = %d, want 2", got)
	}
	if got := l.Count(other, "ATM_MIDNIGHT"); got != 1 {
		t.Errorf("Count(other, ATM_MIDNIGHT) = %d, want 1", got)
	}
}

func TestRecomputeFromHistory_WeeklyRoleCountsOncePerWeek(t *testing.T) {
	asOf := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	member := common.NewMemberID()
	week := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	records := []AssignmentRecord{
		{MemberID: member, Kind: "SYSAID_MAKER", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Week: week},
		{MemberID: member, Kind: "SYSAID_MAKER", Date: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), Week: week},
		{MemberID: member, Kind: "SYSAID_MAKER", Date: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), Week: week},
	}

	l := RecomputeFromHistory(records, 90, asOf)

	if got := l.Count(member, "SYSAID_MAKER"); got != 1 {
		t.Errorf("Count(member, SYSAID_MAKER) = %d, want 1 (once per week)", got)
	}
}

func TestLedger_Snapshot(t *testing.T) {
	l := NewLedger(time.Now().AddDate(0, 0, -90), time.Now())
	member := common.NewMemberID()
	l.Increment(member, "ATM_MORNING")

	rows := l.Snapshot()
	if len(rows) != 1 {
		t.Fatalf("len(Snapshot()) = %d, want 1", len(rows))
	}
	if rows[0].MemberID != member || rows[0].Kind != "ATM_MORNING" || rows[0].Count != 1 {
		t.Errorf("unexpected snapshot row: %+v", rows[0])
	}
}
