package scheduling

import (
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
)

// GenerateInput bundles everything the Assembler needs to run a single
// generation. Callers (the app-layer usecase) are responsible for
// loading Members, UnavailablePeriods and History from their
// repositories within the per-team advisory lock.
type GenerateInput struct {
	TeamID         common.TeamID
	StartDate      time.Time
	EndDate        time.Time
	Seed           int64
	Aggressiveness int
	Members        []*member.Member
	Unavailable    []*availability.UnavailablePeriod
	History        []ledger.AssignmentRecord
	Config         SchedulingConfig
}

// GenerateResult is everything a generation produces, ready for a
// single atomic commit.
type GenerateResult struct {
	Schedule    *schedule.Schedule
	Assignments []*schedule.Assignment
	Ledger      *ledger.Ledger
	AuditLog    *AuditLog
	Warnings    []Warning
}

// Generate is the Assembler's single entry point:
// it seeds the ledger, runs the ATM scheduler then the SysAid scheduler
// sharing ledger and eligibility state, and assembles the result. It
// performs no I/O; the caller commits Assignments/AuditEntries/ledger
// deltas within one transaction.
func Generate(in GenerateInput) (*GenerateResult, error) {
	if in.EndDate.Before(in.StartDate) {
		return nil, common.NewValidationError("end_date must not be before start_date", nil)
	}
	if in.TeamID == "" {
		return nil, common.NewValidationError("team_id is required", nil)
	}

	aggressiveness := in.Aggressiveness
	if aggressiveness == 0 {
		aggressiveness = in.Config.DefaultAggressiveness
	}

	sch, err := schedule.NewSchedule(in.TeamID, in.StartDate, in.EndDate, in.Seed, aggressiveness)
	if err != nil {
		return nil, err
	}

	windowDays := in.Config.FairnessWindowDays
	l := ledger.RecomputeFromHistory(in.History, windowDays, in.StartDate)

	store := availability.NewStore(in.Unavailable)
	rest := NewRestState()
	selector := NewSelector(l, in.Seed, aggressiveness)
	auditLog := NewAuditLog()

	atmSlots, atmWarnings := RunATMScheduler(in.Members, in.StartDate, in.EndDate, CanonicalDayShiftPlan(), store, rest, l, selector, in.Config, auditLog)
	sysAidSlots, sysAidWarnings := RunSysAidScheduler(in.Members, in.StartDate, in.EndDate, store, rest, l, selector, in.Config, auditLog)

	warnings := append(atmWarnings, sysAidWarnings...)

	// Every slot was already produced by an eligibility-filtered
	// selection, so NewAssignment failing here reflects a data problem
	// with the slot itself rather than a scheduling decision. Collect
	// every such failure across both schedulers instead of abandoning
	// the run at the first one, so a caller sees the full picture.
	var assignments []*schedule.Assignment
	var buildErrs *multierror.Error
	for _, slot := range atmSlots {
		if slot.Skipped {
			continue
		}
		a, err := schedule.NewAssignment(sch.ID(), slot.Date, string(slot.Kind), slot.ShiftLabel, slot.MemberID)
		if err != nil {
			buildErrs = multierror.Append(buildErrs, err)
			continue
		}
		assignments = append(assignments, a)
	}
	for _, slot := range sysAidSlots {
		if slot.Skipped {
			continue
		}
		a, err := schedule.NewAssignment(sch.ID(), slot.Date, string(slot.Kind), string(slot.Kind), slot.MemberID)
		if err != nil {
			buildErrs = multierror.Append(buildErrs, err)
			continue
		}
		assignments = append(assignments, a)
	}
	if buildErrs.ErrorOrNil() != nil {
		return nil, buildErrs.ErrorOrNil()
	}

	return &GenerateResult{
		Schedule:    sch,
		Assignments: assignments,
		Ledger:      l,
		AuditLog:    auditLog,
		Warnings:    warnings,
	}, nil
}
