package scheduling

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/timeutil"
)

// ValidateSwapInput bundles the context ValidateSwap needs to re-run
// eligibility for a single Assignment: the assignment being replaced,
// the proposed member, every other active Assignment in the schedule
// (for distinctness/rest/cooldown re-checks), the team's members (for
// active/office-day checks), and the availability store.
type ValidateSwapInput struct {
	Assignment        *schedule.Assignment
	ProposedMemberID  common.MemberID
	OtherAssignments  []*schedule.Assignment // excludes Assignment itself
	Members           []*member.Member
	Store             *availability.Store
	Config            SchedulingConfig
}

// ValidateSwap re-runs eligibility for replacing Assignment's member with
// ProposedMemberID. It builds an eligibility context that excludes the
// assignment's own history and checks every
// constraint that applies to the assignment's kind. On success it
// returns nil; on failure it returns a *common.DomainError naming the
// failing constraint.
func ValidateSwap(in ValidateSwapInput) error {
	proposed := findMember(in.Members, in.ProposedMemberID)
	if proposed == nil {
		return common.NewNotFoundError("member", in.ProposedMemberID.String())
	}
	if !proposed.IsActive() {
		return common.NewConstraintViolationError("inactive-member", "proposed member is not active")
	}

	kind := TaskKind(in.Assignment.Kind())
	date := in.Assignment.Date()

	if kind == ATMMorning || kind == ATMMidnight {
		return validateATMSwap(in, proposed, kind, date)
	}
	return validateSysAidSwap(in, proposed, kind, date)
}

func validateATMSwap(in ValidateSwapInput, proposed *member.Member, kind TaskKind, date time.Time) error {
	memberID := proposed.MemberID()

	if !in.Store.IsAvailable(memberID, date) {
		return common.NewConstraintViolationError("unavailability", "proposed member is unavailable on this date")
	}

	for _, other := range in.OtherAssignments {
		if !other.IsActive() || !other.Date().Equal(date) {
			continue
		}
		otherKind := TaskKind(other.Kind())
		if (otherKind == ATMMorning || otherKind == ATMMidnight) && other.MemberID() == memberID {
			return common.NewConstraintViolationError("same-day-distinctness", "proposed member already has an ATM assignment on this date")
		}
	}

	if rest := atmRestViolation(in.OtherAssignments, memberID, date, kind, in.Config); rest != "" {
		return common.NewConstraintViolationError("rest-rule", rest)
	}

	if kind == ATMMidnight {
		if gap, violates := cooldownViolation(in.OtherAssignments, memberID, date, in.Config.ATMCooldownDays); violates {
			return common.NewConstraintViolationError("cooldown", cooldownMessage(gap, in.Config.ATMCooldownDays))
		}
	}

	return nil
}

func validateSysAidSwap(in ValidateSwapInput, proposed *member.Member, kind TaskKind, date time.Time) error {
	memberID := proposed.MemberID()
	weekStart, weekEnd := timeutil.WeekBucket(date)

	required := weekdaySetToOfficeDays(in.Config.SysAidRequiredOfficeDays)
	if !proposed.OfficeDays().ContainsAll(required) {
		return common.NewConstraintViolationError("office-day", "proposed member does not cover the required office days")
	}
	if !in.Store.IsAvailableAll(memberID, weekStart, weekEnd) {
		return common.NewConstraintViolationError("unavailability", "proposed member is unavailable during this week")
	}

	opposite := SysAidChecker
	if kind == SysAidChecker {
		opposite = SysAidMaker
	}
	for _, other := range in.OtherAssignments {
		if !other.IsActive() {
			continue
		}
		ows, _ := timeutil.WeekBucket(other.Date())
		if !ows.Equal(weekStart) {
			continue
		}
		if TaskKind(other.Kind()) == opposite && other.MemberID() == memberID {
			return common.NewConstraintViolationError("distinctness", "proposed member already holds the other SysAid role this week")
		}
	}

	return nil
}

func findMember(members []*member.Member, id common.MemberID) *member.Member {
	for _, m := range members {
		if m.MemberID() == id {
			return m
		}
	}
	return nil
}

// atmRestViolation reports a non-empty reason if assigning memberID on
// date would violate the rest rule, either because memberID worked
// ATM_MIDNIGHT the day before (so date is their rest day) or because
// assigning them ATM_MIDNIGHT on date would leave an existing ATM
// assignment on date+1 in place.
func atmRestViolation(others []*schedule.Assignment, memberID common.MemberID, date time.Time, kind TaskKind, cfg SchedulingConfig) string {
	if !cfg.ATMRestRuleEnabled {
		return ""
	}
	prevDay := date.AddDate(0, 0, -1)
	nextDay := date.AddDate(0, 0, 1)
	for _, other := range others {
		if !other.IsActive() || other.MemberID() != memberID {
			continue
		}
		if other.Date().Equal(prevDay) && TaskKind(other.Kind()) == ATMMidnight {
			return "proposed member worked an ATM_MIDNIGHT shift the day before"
		}
		if kind == ATMMidnight && other.Date().Equal(nextDay) && (TaskKind(other.Kind()) == ATMMorning || TaskKind(other.Kind()) == ATMMidnight) {
			return "proposed member already has an ATM assignment the day after"
		}
	}
	return ""
}

func cooldownViolation(others []*schedule.Assignment, memberID common.MemberID, date time.Time, cooldownDays int) (int, bool) {
	best := -1
	for _, other := range others {
		if !other.IsActive() || other.MemberID() != memberID || TaskKind(other.Kind()) != ATMMidnight {
			continue
		}
		gap := int(date.Sub(other.Date()).Hours() / 24)
		if gap < 0 {
			gap = -gap
		}
		if best == -1 || gap < best {
			best = gap
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, best < cooldownDays
}

func cooldownMessage(gap, cooldownDays int) string {
	if gap == 0 {
		return "proposed member already works ATM_MIDNIGHT on this date"
	}
	return "proposed member's nearest ATM_MIDNIGHT assignment is inside the cooldown window"
}

