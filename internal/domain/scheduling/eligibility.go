package scheduling

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
)

// EligibleForATM produces the candidate set for (date, shift): active,
// available, not resting, past cooldown (for ATM_MIDNIGHT), and not
// already assigned another ATM shift today.
func EligibleForATM(
	members []*member.Member,
	date time.Time,
	shift Shift,
	store *availability.Store,
	rest *RestState,
	cooldownDays int,
	alreadyAssignedToday map[common.MemberID]bool,
) []common.MemberID {
	var out []common.MemberID
	for _, m := range members {
		if !m.IsActive() {
			continue
		}
		id := m.MemberID()
		if !store.IsAvailable(id, date) {
			continue
		}
		if rest.IsResting(id, date) {
			continue
		}
		if shift.Kind == ATMMidnight && rest.WithinCooldown(id, date, cooldownDays) {
			continue
		}
		if alreadyAssignedToday[id] {
			continue
		}
		out = append(out, id)
	}
	return out
}

// EligibleForSysAid produces the candidate set for week [weekStart,
// weekEnd]: active, office days superset of the required set, available
// throughout the week, no rest day inside the week, and (for checker)
// not the week's chosen maker.
func EligibleForSysAid(
	members []*member.Member,
	weekStart, weekEnd time.Time,
	store *availability.Store,
	rest *RestState,
	requiredOfficeDays member.OfficeDays,
	excludeMaker *common.MemberID,
) []common.MemberID {
	var out []common.MemberID
	for _, m := range members {
		if !m.IsActive() {
			continue
		}
		id := m.MemberID()
		if !m.OfficeDays().ContainsAll(requiredOfficeDays) {
			continue
		}
		if !store.IsAvailableAll(id, weekStart, weekEnd) {
			continue
		}
		if rest.RestsWithin(id, weekStart, weekEnd) {
			continue
		}
		if excludeMaker != nil && id == *excludeMaker {
			continue
		}
		out = append(out, id)
	}
	return out
}
