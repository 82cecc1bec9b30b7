package scheduling

import (
	"testing"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
)

func weekdayMember(t *testing.T, teamID common.TeamID, name string) *member.Member {
	t.Helper()
	m, err := member.NewMember(
		teamID, name,
		member.NewOfficeDays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
		"", member.RoleMember,
	)
	if err != nil {
		t.Fatalf("NewMember(%s) error = %v", name, err)
	}
	return m
}

// S1: Team {A,B,C,D}, all office Mon-Fri, no unavailability, range
// 2025-01-06..2025-01-12. Total ATM assignments should be 2*5+4+3 = 17.
func TestGenerate_S1_FullWeekNoUnavailability(t *testing.T) {
	teamID := common.NewTeamID()
	members := []*member.Member{
		weekdayMember(t, teamID, "A"),
		weekdayMember(t, teamID, "B"),
		weekdayMember(t, teamID, "C"),
		weekdayMember(t, teamID, "D"),
	}

	result, err := Generate(GenerateInput{
		TeamID:         teamID,
		StartDate:      time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Seed:           12345,
		Aggressiveness: 1,
		Members:        members,
		Config:         DefaultSchedulingConfig(),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	atmCount := 0
	sysAidCount := 0
	for _, a := range result.Assignments {
		switch TaskKind(a.Kind()) {
		case ATMMorning, ATMMidnight:
			atmCount++
		case SysAidMaker, SysAidChecker:
			sysAidCount++
		}
	}

	if atmCount != 17 {
		t.Errorf("atmCount = %d, want 17", atmCount)
	}
	if sysAidCount == 0 {
		t.Error("expected SysAid assignments for the week")
	}

	// No member should appear as ATM_MIDNIGHT on consecutive calendar days.
	lastMidnight := make(map[common.MemberID]time.Time)
	for _, a := range result.Assignments {
		if TaskKind(a.Kind()) != ATMMidnight {
			continue
		}
		if prev, ok := lastMidnight[a.MemberID()]; ok {
			gap := int(a.Date().Sub(prev).Hours() / 24)
			if gap == 1 {
				t.Errorf("member %v assigned ATM_MIDNIGHT on consecutive days", a.MemberID())
			}
		}
		lastMidnight[a.MemberID()] = a.Date()
	}
}

// S2: Team of 2, weekday range. Cooldown should force an unfilled
// MIDNIGHT slot with a warning on day 3; generation still succeeds.
func TestGenerate_S2_SmallTeamCooldownWarning(t *testing.T) {
	teamID := common.NewTeamID()
	members := []*member.Member{
		weekdayMember(t, teamID, "A"),
		weekdayMember(t, teamID, "B"),
	}

	result, err := Generate(GenerateInput{
		TeamID:         teamID,
		StartDate:      time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Seed:           1,
		Aggressiveness: 1,
		Members:        members,
		Config:         DefaultSchedulingConfig(),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	foundInsufficientWarning := false
	for _, w := range result.Warnings {
		if w.Kind == WarningInsufficientCandidates {
			foundInsufficientWarning = true
		}
	}
	if !foundInsufficientWarning {
		t.Error("expected at least one InsufficientCandidates warning for a 2-person team under cooldown")
	}
}

// S3: Team of 5, one member unavailable the whole range. That member
// should appear in zero assignments.
func TestGenerate_S3_UnavailableMemberExcluded(t *testing.T) {
	teamID := common.NewTeamID()
	a := weekdayMember(t, teamID, "A")
	b := weekdayMember(t, teamID, "B")
	c := weekdayMember(t, teamID, "C")
	d := weekdayMember(t, teamID, "D")
	e := weekdayMember(t, teamID, "E")
	members := []*member.Member{a, b, c, d, e}

	period, err := availability.NewUnavailablePeriod(
		teamID, c.MemberID(),
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		"",
	)
	if err != nil {
		t.Fatalf("NewUnavailablePeriod() error = %v", err)
	}

	result, err := Generate(GenerateInput{
		TeamID:      teamID,
		StartDate:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Seed:        12345,
		Members:     members,
		Unavailable: []*availability.UnavailablePeriod{period},
		Config:      DefaultSchedulingConfig(),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, assignment := range result.Assignments {
		if assignment.MemberID() == c.MemberID() {
			t.Errorf("unavailable member C should not appear in any assignment, found %+v", assignment)
		}
	}
}

// S4: regenerating with the same seed produces identical assignments;
// changing the seed can change tie-broken decisions.
func TestGenerate_S4_DeterministicWithSeed(t *testing.T) {
	teamID := common.NewTeamID()
	members := []*member.Member{
		weekdayMember(t, teamID, "A"),
		weekdayMember(t, teamID, "B"),
		weekdayMember(t, teamID, "C"),
		weekdayMember(t, teamID, "D"),
	}

	build := func(seed int64) GenerateInput {
		return GenerateInput{
			TeamID:    teamID,
			StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
			Seed:      seed,
			Members:   members,
			Config:    DefaultSchedulingConfig(),
		}
	}

	r1, err := Generate(build(12345))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	r2, err := Generate(build(12345))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(r1.Assignments) != len(r2.Assignments) {
		t.Fatalf("assignment counts differ: %d != %d", len(r1.Assignments), len(r2.Assignments))
	}
	for i := range r1.Assignments {
		if r1.Assignments[i].MemberID() != r2.Assignments[i].MemberID() ||
			r1.Assignments[i].Kind() != r2.Assignments[i].Kind() {
			t.Errorf("assignment %d differs between identical-seed runs", i)
		}
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	teamID := common.NewTeamID()
	start := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	if _, err := Generate(GenerateInput{TeamID: teamID, StartDate: start, EndDate: end, Config: DefaultSchedulingConfig()}); err == nil {
		t.Error("expected error when end_date is before start_date")
	}
	if _, err := Generate(GenerateInput{StartDate: end, EndDate: start, Config: DefaultSchedulingConfig()}); err == nil {
		t.Error("expected error when team_id is empty")
	}
}

// S6: recompute_from_history should equal direct computation from the
// committed Assignments within the window.
func TestGenerate_S6_LedgerRecomputeMatchesHistory(t *testing.T) {
	teamID := common.NewTeamID()
	members := []*member.Member{
		weekdayMember(t, teamID, "A"),
		weekdayMember(t, teamID, "B"),
		weekdayMember(t, teamID, "C"),
		weekdayMember(t, teamID, "D"),
	}

	result, err := Generate(GenerateInput{
		TeamID:    teamID,
		StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		Seed:      12345,
		Members:   members,
		Config:    DefaultSchedulingConfig(),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var records []ledger.AssignmentRecord
	for _, a := range result.Assignments {
		rec := ledger.AssignmentRecord{MemberID: a.MemberID(), Kind: a.Kind(), Date: a.Date()}
		if TaskKind(a.Kind()) == SysAidMaker || TaskKind(a.Kind()) == SysAidChecker {
			weekStart, _ := weekBucketForTest(a.Date())
			rec.Week = weekStart
		}
		records = append(records, rec)
	}

	recomputed := ledger.RecomputeFromHistory(records, 90, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC))

	for _, m := range members {
		for _, k := range []TaskKind{ATMMorning, ATMMidnight, SysAidMaker, SysAidChecker} {
			direct := result.Ledger.Count(m.MemberID(), string(k))
			got := recomputed.Count(m.MemberID(), string(k))
			if direct != got {
				t.Errorf("member %v kind %v: ledger count %d != recomputed %d", m.MemberID(), k, direct, got)
			}
		}
	}
}

func weekBucketForTest(d time.Time) (time.Time, time.Time) {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	weekStart := d.AddDate(0, 0, -offset)
	return weekStart, weekStart.AddDate(0, 0, 5)
}
