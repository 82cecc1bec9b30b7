package scheduling

// TaskKind is one of the four canonical recurring work kinds. It is
// fixed; custom task definitions are out of scope for the core.
type TaskKind string

const (
	ATMMorning    TaskKind = "ATM_MORNING"
	ATMMidnight   TaskKind = "ATM_MIDNIGHT"
	SysAidMaker   TaskKind = "SYSAID_MAKER"
	SysAidChecker TaskKind = "SYSAID_CHECKER"
)

// taskKindInfo describes behavior that would otherwise scatter across
// if-kind branches: whether a kind is assigned once per day or once per
// week, and whether it triggers the ATM rest rule.
type taskKindInfo struct {
	weekly       bool
	triggersRest bool
}

var taskKindTable = map[TaskKind]taskKindInfo{
	ATMMorning:    {weekly: false, triggersRest: false},
	ATMMidnight:   {weekly: false, triggersRest: true},
	SysAidMaker:   {weekly: true, triggersRest: false},
	SysAidChecker: {weekly: true, triggersRest: false},
}

// IsWeekly reports whether k is counted once per week (SysAid roles)
// rather than once per day (ATM shifts).
func (k TaskKind) IsWeekly() bool {
	return taskKindTable[k].weekly
}

// TriggersRest reports whether an assignment of kind k sets the
// following day's rest flag.
func (k TaskKind) TriggersRest() bool {
	return taskKindTable[k].triggersRest
}

// canonicalOrder ranks kinds for stable iteration: ATM_MORNING <
// ATM_MIDNIGHT < SYSAID_MAKER < SYSAID_CHECKER.
var canonicalOrder = map[TaskKind]int{
	ATMMorning:    0,
	ATMMidnight:   1,
	SysAidMaker:   2,
	SysAidChecker: 3,
}

// Rank returns k's position in canonical order, for sorting Assignments.
func (k TaskKind) Rank() int {
	return canonicalOrder[k]
}
