package scheduling

import "time"

// WarningKind distinguishes the two non-fatal failure modes a generation
// can hit: a slot with too few candidates, or a SysAid week with fewer
// than two eligible members.
type WarningKind string

const (
	WarningInsufficientCandidates WarningKind = "INSUFFICIENT_CANDIDATES"
	WarningDistinctnessViolation  WarningKind = "DISTINCTNESS_VIOLATION"
)

// Warning is first-class audit data, never a Go error: warnings never
// fail a generation.
type Warning struct {
	Kind    WarningKind
	Date    time.Time
	Task    TaskKind
	Label   string
	Message string
}
