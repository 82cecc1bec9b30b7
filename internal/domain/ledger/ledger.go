package ledger

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// AssignmentRecord is the minimal shape of a persisted Assignment needed
// to recompute the ledger. It deliberately does not import the schedule
// package's Assignment entity so the ledger has no dependency on
// persistence-shaped aggregates; callers project into this shape.
type AssignmentRecord struct {
	MemberID common.MemberID
	Kind     string
	Date     time.Time
	// Week is set for weekly roles (SysAid maker/checker) so that
	// multiple per-day rows for the same week collapse into a single
	// count, so a weekly role is counted once per week, not once per day.
	Week time.Time
}

type key struct {
	member common.MemberID
	kind   string
}

// Ledger is the single source of fairness truth during a generation. It
// is seeded from persisted history and mutated in place by the Assembler
// and the Swap Validator; deltas are written back at the end.
type Ledger struct {
	counts      map[key]int
	windowStart time.Time
	windowEnd   time.Time
}

// NewLedger creates an empty ledger for the window (windowStart, windowEnd].
func NewLedger(windowStart, windowEnd time.Time) *Ledger {
	return &Ledger{
		counts:      make(map[key]int),
		windowStart: windowStart,
		windowEnd:   windowEnd,
	}
}

// WindowStart and WindowEnd return the ledger's rolling window bounds.
func (l *Ledger) WindowStart() time.Time { return l.windowStart }
func (l *Ledger) WindowEnd() time.Time   { return l.windowEnd }

// Count returns the current count for (member, kind).
func (l *Ledger) Count(member common.MemberID, kind string) int {
	return l.counts[key{member, kind}]
}

// Total returns the sum of counts across all kinds for member.
func (l *Ledger) Total(member common.MemberID) int {
	total := 0
	for k, c := range l.counts {
		if k.member == member {
			total += c
		}
	}
	return total
}

// Increment bumps (member, kind) by one.
func (l *Ledger) Increment(member common.MemberID, kind string) {
	l.counts[key{member, kind}]++
}

// Decrement reduces (member, kind) by one, floored at zero.
func (l *Ledger) Decrement(member common.MemberID, kind string) {
	k := key{member, kind}
	if l.counts[k] > 0 {
		l.counts[k]--
	}
}

// Snapshot returns the current counts as FairnessCount rows.
func (l *Ledger) Snapshot() []FairnessCount {
	rows := make([]FairnessCount, 0, len(l.counts))
	for k, c := range l.counts {
		rows = append(rows, FairnessCount{
			MemberID:    k.member,
			Kind:        k.kind,
			Count:       c,
			WindowStart: l.windowStart,
			WindowEnd:   l.windowEnd,
		})
	}
	return rows
}

// LoadSnapshot rebuilds a Ledger from previously persisted FairnessCount
// rows, so a single swap application can adjust counts in place instead
// of recomputing the whole rolling window from Assignment history.
func LoadSnapshot(rows []FairnessCount, windowStart, windowEnd time.Time) *Ledger {
	l := NewLedger(windowStart, windowEnd)
	for _, r := range rows {
		l.counts[key{r.MemberID, r.Kind}] = r.Count
	}
	return l
}

// RecomputeFromHistory rebuilds all counts by filtering records to the
// rolling window (windowStart, windowEnd]. Weekly-role
// records (Week set) are deduplicated so that several per-day rows for
// the same (member, kind, week) contribute exactly one count.
func RecomputeFromHistory(records []AssignmentRecord, windowDays int, asOf time.Time) *Ledger {
	windowEnd := asOf
	windowStart := windowEnd.AddDate(0, 0, -windowDays)
	l := NewLedger(windowStart, windowEnd)

	seenWeekly := make(map[string]bool)
	for _, r := range records {
		if !r.Date.After(windowStart) || r.Date.After(windowEnd) {
			continue
		}
		if !r.Week.IsZero() {
			dedupeKey := r.MemberID.String() + "|" + r.Kind + "|" + r.Week.Format(time.DateOnly)
			if seenWeekly[dedupeKey] {
				continue
			}
			seenWeekly[dedupeKey] = true
		}
		l.Increment(r.MemberID, r.Kind)
	}
	return l
}
