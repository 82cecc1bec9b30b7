package scheduling

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// RestState is local to one generation's stack; it is never shared
// between generations or persisted directly. The ATM phase writes into
// it; the SysAid phase reads the rest days it produced.
type RestState struct {
	restDates     map[common.MemberID]map[string]bool
	lastMidnight  map[common.MemberID]time.Time
}

// NewRestState returns an empty RestState.
func NewRestState() *RestState {
	return &RestState{
		restDates:    make(map[common.MemberID]map[string]bool),
		lastMidnight: make(map[common.MemberID]time.Time),
	}
}

// MarkRest sets member's rest flag for date.
func (s *RestState) MarkRest(member common.MemberID, date time.Time) {
	if s.restDates[member] == nil {
		s.restDates[member] = make(map[string]bool)
	}
	s.restDates[member][dateKey(date)] = true
}

// IsResting reports whether member's rest flag is set for date.
func (s *RestState) IsResting(member common.MemberID, date time.Time) bool {
	return s.restDates[member][dateKey(date)]
}

// RestsWithin reports whether member has any rest day inside [start, end].
func (s *RestState) RestsWithin(member common.MemberID, start, end time.Time) bool {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if s.IsResting(member, d) {
			return true
		}
	}
	return false
}

// SetLastMidnight records the most recent ATM_MIDNIGHT assignment date
// for member, for cooldown checks.
func (s *RestState) SetLastMidnight(member common.MemberID, date time.Time) {
	s.lastMidnight[member] = date
}

// WithinCooldown reports whether date is within cooldownDays of member's
// last recorded ATM_MIDNIGHT assignment.
func (s *RestState) WithinCooldown(member common.MemberID, date time.Time, cooldownDays int) bool {
	last, ok := s.lastMidnight[member]
	if !ok {
		return false
	}
	gap := int(date.Sub(last).Hours() / 24)
	return gap < cooldownDays
}

func dateKey(d time.Time) string {
	return d.Format(time.DateOnly)
}
