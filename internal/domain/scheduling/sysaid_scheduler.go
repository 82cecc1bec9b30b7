package scheduling

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/timeutil"
)

// SysAidSlot is one filled or skipped maker/checker role-day, ready to
// become a persisted Assignment. One role produces one slot per assigned
// day, but the ledger only counts it once per week.
type SysAidSlot struct {
	Date     time.Time
	WeekStart time.Time
	Kind     TaskKind
	MemberID common.MemberID
	Skipped  bool
}

// RunSysAidScheduler buckets [start, end] into Mon-Sat weeks and assigns
// maker/checker per week, consuming the rest flags the ATM phase wrote.
func RunSysAidScheduler(
	members []*member.Member,
	start, end time.Time,
	store *availability.Store,
	rest *RestState,
	l *ledger.Ledger,
	selector *Selector,
	cfg SchedulingConfig,
	log *AuditLog,
) ([]SysAidSlot, []Warning) {
	var slots []SysAidSlot
	var warnings []Warning

	requiredOfficeDays := weekdaySetToOfficeDays(cfg.SysAidRequiredOfficeDays)
	assignedDays := sysAidAssignedDays(cfg.SysAidWeekDays)

	timeutil.IterWeeks(start, end, func(weekStart, weekEnd time.Time) {
		makerCandidates := EligibleForSysAid(members, weekStart, weekEnd, store, rest, requiredOfficeDays, nil)

		if len(makerCandidates) < 2 {
			msg := "fewer than 2 eligible members for SysAid week"
			warnings = append(warnings, Warning{
				Kind: WarningDistinctnessViolation, Date: weekStart, Task: SysAidMaker, Message: msg,
			})
			log.Append(AuditEntry{
				ID: common.NewAuditEntryID(), Week: weekStart, Kind: SysAidMaker,
				Warnings: []string{msg}, CreatedAt: time.Now(),
			})
			return
		}

		maker, makerRanks, makerReason := selector.Select(makerCandidates, SysAidMaker, weekStart)

		checkerCandidates := EligibleForSysAid(members, weekStart, weekEnd, store, rest, requiredOfficeDays, &maker)
		if len(checkerCandidates) == 0 {
			msg := "no eligible checker distinct from maker"
			warnings = append(warnings, Warning{
				Kind: WarningInsufficientCandidates, Date: weekStart, Task: SysAidChecker, Message: msg,
			})
			log.Append(AuditEntry{
				ID: common.NewAuditEntryID(), Week: weekStart, Kind: SysAidChecker,
				Warnings: []string{msg}, CreatedAt: time.Now(),
			})
			return
		}

		checker, checkerRanks, checkerReason := selector.Select(checkerCandidates, SysAidChecker, weekStart)

		l.Increment(maker, string(SysAidMaker))
		l.Increment(checker, string(SysAidChecker))

		log.Append(AuditEntry{
			ID: common.NewAuditEntryID(), Week: weekStart, Kind: SysAidMaker,
			ChosenMemberID: maker, Candidates: makerRanks, TieBreakReason: makerReason, CreatedAt: time.Now(),
		})
		log.Append(AuditEntry{
			ID: common.NewAuditEntryID(), Week: weekStart, Kind: SysAidChecker,
			ChosenMemberID: checker, Candidates: checkerRanks, TieBreakReason: checkerReason, CreatedAt: time.Now(),
		})

		for _, d := range assignedDays(weekStart) {
			if d.After(end) || d.Before(start) {
				continue
			}
			slots = append(slots, SysAidSlot{Date: d, WeekStart: weekStart, Kind: SysAidMaker, MemberID: maker})
			slots = append(slots, SysAidSlot{Date: d, WeekStart: weekStart, Kind: SysAidChecker, MemberID: checker})
		}
	})

	return slots, warnings
}

// sysAidAssignedDays returns a function producing, for a given week's
// Monday, the configured set of assigned days within that week.
func sysAidAssignedDays(weekDays map[time.Weekday]bool) func(weekStart time.Time) []time.Time {
	return func(weekStart time.Time) []time.Time {
		var days []time.Time
		for i := 0; i < 7; i++ {
			d := weekStart.AddDate(0, 0, i)
			if weekDays[d.Weekday()] {
				days = append(days, d)
			}
		}
		return days
	}
}

func weekdaySetToOfficeDays(set map[time.Weekday]bool) member.OfficeDays {
	var days []time.Weekday
	for d, ok := range set {
		if ok {
			days = append(days, d)
		}
	}
	return member.NewOfficeDays(days...)
}
