package scheduling

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// CandidateRank is one candidate's rank key components as recorded in an
// AuditEntry, so the decision can be reconstructed without re-running the
// Selector.
type CandidateRank struct {
	MemberID common.MemberID
	Primary  int
	Secondary int
	Tiebreak  uint64
}

// AuditEntry records one selection decision: the chosen member, every
// candidate considered with its rank key, the verbal tie-break reason,
// and any warnings.
type AuditEntry struct {
	ID             common.AuditEntryID
	ScheduleID     common.ScheduleID
	Date           time.Time // zero for weekly entries; see Week.
	Week           time.Time // zero for daily entries.
	Kind           TaskKind
	ShiftLabel     string
	ChosenMemberID common.MemberID
	Candidates     []CandidateRank
	TieBreakReason string
	Warnings       []string
	CreatedAt      time.Time
}

// AuditLog is the append-only log for one generation. It is persisted
// alongside the Schedule it describes.
type AuditLog struct {
	entries []AuditEntry
}

// NewAuditLog returns an empty log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Append records one decision.
func (l *AuditLog) Append(e AuditEntry) {
	l.entries = append(l.entries, e)
}

// Entries returns every recorded decision, in append order.
func (l *AuditLog) Entries() []AuditEntry {
	return l.entries
}
