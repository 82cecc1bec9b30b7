package scheduling

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
)

// ATMSlot is one filled or skipped ATM shift, ready to become a
// persisted Assignment.
type ATMSlot struct {
	Date       time.Time
	Kind       TaskKind
	ShiftLabel string
	MemberID   common.MemberID // zero value if skipped
	Skipped    bool
}

// RunATMScheduler iterates [start, end], filling the DayShiftPlan per
// weekday and updating rest/cooldown state in place.
// Insufficient candidates never error: the slot is left unfilled, a
// warning is appended, and the generation continues.
func RunATMScheduler(
	members []*member.Member,
	start, end time.Time,
	plan DayShiftPlan,
	store *availability.Store,
	rest *RestState,
	l *ledger.Ledger,
	selector *Selector,
	cfg SchedulingConfig,
	log *AuditLog,
) ([]ATMSlot, []Warning) {
	var slots []ATMSlot
	var warnings []Warning

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		shifts := plan[d.Weekday()]
		assignedToday := make(map[common.MemberID]bool)

		for _, shift := range shifts {
			for i := 0; i < shift.RequiredCount; i++ {
				candidates := EligibleForATM(members, d, shift, store, rest, cfg.ATMCooldownDays, assignedToday)

				if len(candidates) == 0 {
					msg := "no eligible member for " + shift.Label
					warnings = append(warnings, Warning{
						Kind: WarningInsufficientCandidates, Date: d, Task: shift.Kind,
						Label: shift.Label, Message: msg,
					})
					log.Append(AuditEntry{
						ID: common.NewAuditEntryID(), Date: d, Kind: shift.Kind,
						ShiftLabel: shift.Label, Warnings: []string{msg}, CreatedAt: time.Now(),
					})
					slots = append(slots, ATMSlot{Date: d, Kind: shift.Kind, ShiftLabel: shift.Label, Skipped: true})
					continue
				}

				chosen, ranks, reason := selector.Select(candidates, shift.Kind, d)

				assignedToday[chosen] = true
				l.Increment(chosen, string(shift.Kind))

				if shift.Kind == ATMMidnight {
					rest.SetLastMidnight(chosen, d)
					if cfg.ATMRestRuleEnabled {
						rest.MarkRest(chosen, d.AddDate(0, 0, 1))
					}
				}

				log.Append(AuditEntry{
					ID: common.NewAuditEntryID(), Date: d, Kind: shift.Kind,
					ShiftLabel: shift.Label, ChosenMemberID: chosen, Candidates: ranks,
					TieBreakReason: reason, CreatedAt: time.Now(),
				})

				slots = append(slots, ATMSlot{Date: d, Kind: shift.Kind, ShiftLabel: shift.Label, MemberID: chosen})
			}
		}
	}

	return slots, warnings
}
