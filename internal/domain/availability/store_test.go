package availability

import (
	"testing"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

func TestStore_IsAvailable(t *testing.T) {
	teamID := common.NewTeamID()
	memberID := common.NewMemberID()

	period, err := NewUnavailablePeriod(
		teamID, memberID,
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		"vacation",
	)
	if err != nil {
		t.Fatalf("NewUnavailablePeriod() error = %v", err)
	}

	store := NewStore([]*UnavailablePeriod{period})

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"inside period", time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), false},
		{"start boundary", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), false},
		{"end boundary", time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), false},
		{"before period", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"after period", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.IsAvailable(memberID, tt.date); got != tt.want {
				t.Errorf("IsAvailable(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestStore_IsAvailableAll(t *testing.T) {
	teamID := common.NewTeamID()
	memberID := common.NewMemberID()

	period, err := NewUnavailablePeriod(
		teamID, memberID,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		"",
	)
	if err != nil {
		t.Fatalf("NewUnavailablePeriod() error = %v", err)
	}

	store := NewStore([]*UnavailablePeriod{period})

	if store.IsAvailableAll(memberID, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected unavailable window to fail IsAvailableAll")
	}

	if !store.IsAvailableAll(memberID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected disjoint window to pass IsAvailableAll")
	}

	otherMember := common.NewMemberID()
	if !store.IsAvailableAll(otherMember, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected member with no periods to be fully available")
	}
}

func TestNewUnavailablePeriod_ValidationErrors(t *testing.T) {
	teamID := common.NewTeamID()
	memberID := common.NewMemberID()
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	if _, err := NewUnavailablePeriod(teamID, memberID, start, end, ""); err == nil {
		t.Error("expected error when end_date is before start_date")
	}
	if _, err := NewUnavailablePeriod("", memberID, end, start, ""); err == nil {
		t.Error("expected error when team_id is empty")
	}
}
