package availability

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/timeutil"
)

// Store is a pure query view over a member's UnavailablePeriods. It is
// seeded once per generation from the repository and never mutated; it
// has no notion of ATM rest days, which the scheduling package tracks in
// its own per-generation state.
type Store struct {
	periodsByMember map[common.MemberID][]*UnavailablePeriod
}

// NewStore builds a Store from the full set of periods for a team.
func NewStore(periods []*UnavailablePeriod) *Store {
	s := &Store{periodsByMember: make(map[common.MemberID][]*UnavailablePeriod)}
	for _, p := range periods {
		s.periodsByMember[p.MemberID()] = append(s.periodsByMember[p.MemberID()], p)
	}
	return s
}

// IsAvailable reports whether member is available on date: true unless
// date falls inside one of the member's UnavailablePeriods.
func (s *Store) IsAvailable(member common.MemberID, date time.Time) bool {
	for _, p := range s.periodsByMember[member] {
		if p.Covers(date) {
			return false
		}
	}
	return true
}

// IsAvailableAll reports whether member is available on every date in
// [start, end] inclusive.
func (s *Store) IsAvailableAll(member common.MemberID, start, end time.Time) bool {
	available := true
	timeutil.IterDays(start, end, func(d time.Time) {
		if available && !s.IsAvailable(member, d) {
			available = false
		}
	})
	return available
}
