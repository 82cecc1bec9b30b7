package schedule

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// AssignmentStatus distinguishes a live assignment from one a swap or
// reassign has replaced.
type AssignmentStatus string

const (
	AssignmentActive     AssignmentStatus = "active"
	AssignmentSuperseded AssignmentStatus = "superseded"
)

// Assignment binds one member to one (date, kind, shift_label) slot. A
// member x date x kind x shift_label tuple is unique while active.
type Assignment struct {
	id         common.AssignmentID
	scheduleID common.ScheduleID
	date       time.Time
	kind       string
	shiftLabel string
	memberID   common.MemberID
	status     AssignmentStatus
	createdAt  time.Time
}

// NewAssignment constructs a fresh active Assignment.
func NewAssignment(scheduleID common.ScheduleID, date time.Time, kind, shiftLabel string, memberID common.MemberID) (*Assignment, error) {
	a := &Assignment{
		id:         common.NewAssignmentID(),
		scheduleID: scheduleID,
		date:       date,
		kind:       kind,
		shiftLabel: shiftLabel,
		memberID:   memberID,
		status:     AssignmentActive,
		createdAt:  time.Now(),
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// ReconstructAssignment rebuilds an Assignment from storage.
func ReconstructAssignment(
	id common.AssignmentID, scheduleID common.ScheduleID, date time.Time,
	kind, shiftLabel string, memberID common.MemberID, status AssignmentStatus, createdAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		id: id, scheduleID: scheduleID, date: date, kind: kind,
		shiftLabel: shiftLabel, memberID: memberID, status: status, createdAt: createdAt,
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Assignment) validate() error {
	if a.scheduleID == "" {
		return common.NewValidationError("schedule_id is required", nil)
	}
	if a.kind == "" {
		return common.NewValidationError("kind is required", nil)
	}
	if a.memberID == "" {
		return common.NewValidationError("member_id is required", nil)
	}
	return nil
}

func (a *Assignment) ID() common.AssignmentID     { return a.id }
func (a *Assignment) ScheduleID() common.ScheduleID { return a.scheduleID }
func (a *Assignment) Date() time.Time             { return a.date }
func (a *Assignment) Kind() string                { return a.kind }
func (a *Assignment) ShiftLabel() string          { return a.shiftLabel }
func (a *Assignment) MemberID() common.MemberID   { return a.memberID }
func (a *Assignment) Status() AssignmentStatus    { return a.status }
func (a *Assignment) CreatedAt() time.Time        { return a.createdAt }
func (a *Assignment) IsActive() bool              { return a.status == AssignmentActive }

// Supersede marks this assignment superseded, as a swap or reassign does
// to the original when a replacement is inserted.
func (a *Assignment) Supersede() {
	a.status = AssignmentSuperseded
}

// Reassign changes the assignee in place. Used by Swap/Reassign when the
// caller prefers mutating the existing row over insert-plus-supersede;
// either representation is fine as long as exactly one active row
// exists per (date, kind, shift_label).
func (a *Assignment) Reassign(memberID common.MemberID) {
	a.memberID = memberID
}
