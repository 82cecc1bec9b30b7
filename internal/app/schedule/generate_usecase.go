package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/availability"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/services"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/timeutil"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/infra/db"
)

// GenerateScheduleInput is the semantic generation request.
type GenerateScheduleInput struct {
	TeamID         string
	StartDate      time.Time
	EndDate        time.Time
	Seed           int64
	Aggressiveness int
}

// GenerateScheduleOutput is {schedule_id, assignments[], warnings[]}.
type GenerateScheduleOutput struct {
	ScheduleID  string
	Assignments []*schedule.Assignment
	Warnings    []scheduling.Warning
}

// GenerateScheduleUsecase wraps the Assembler the way
// shift_assignment_usecase.go wraps the domain: it resolves inputs via
// repositories, calls scheduling.Generate, and persists via TxManager
// within the per-team advisory lock.
type GenerateScheduleUsecase struct {
	scheduleRepo    schedule.ScheduleRepository
	assignmentRepo  schedule.AssignmentRepository
	memberRepo      member.MemberRepository
	unavailableRepo availability.UnavailablePeriodRepository
	fairnessRepo    FairnessCountRepository
	auditRepo       AuditEntryRepository
	txManager       services.TxManager
	config          scheduling.SchedulingConfig
}

// NewGenerateScheduleUsecase constructs a GenerateScheduleUsecase.
func NewGenerateScheduleUsecase(
	scheduleRepo schedule.ScheduleRepository,
	assignmentRepo schedule.AssignmentRepository,
	memberRepo member.MemberRepository,
	unavailableRepo availability.UnavailablePeriodRepository,
	fairnessRepo FairnessCountRepository,
	auditRepo AuditEntryRepository,
	txManager services.TxManager,
	config scheduling.SchedulingConfig,
) *GenerateScheduleUsecase {
	return &GenerateScheduleUsecase{
		scheduleRepo: scheduleRepo, assignmentRepo: assignmentRepo, memberRepo: memberRepo,
		unavailableRepo: unavailableRepo, fairnessRepo: fairnessRepo, auditRepo: auditRepo,
		txManager: txManager, config: config,
	}
}

// Execute loads members, unavailability and history, runs the Assembler,
// and commits the result in one transaction guarded by the per-team
// advisory lock. Warnings never fail the generation; only InputError
// and StorageFailure do.
func (uc *GenerateScheduleUsecase) Execute(ctx context.Context, input GenerateScheduleInput) (*GenerateScheduleOutput, error) {
	teamID, err := common.ParseTeamID(input.TeamID)
	if err != nil {
		return nil, err
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, common.NewValidationError("end_date must not be before start_date", nil)
	}

	members, err := uc.memberRepo.FindActiveByTeamID(ctx, teamID)
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}

	periods, err := uc.unavailableRepo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}

	windowStart := input.StartDate.AddDate(0, 0, -uc.config.FairnessWindowDays)
	pastAssignments, err := uc.assignmentRepo.FindActiveByTeamSince(ctx, teamID, windowStart, input.StartDate)
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}
	history := toAssignmentRecords(pastAssignments)

	result, err := scheduling.Generate(scheduling.GenerateInput{
		TeamID:         teamID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Seed:           input.Seed,
		Aggressiveness: input.Aggressiveness,
		Members:        members,
		Unavailable:    periods,
		History:        history,
		Config:         uc.config,
	})
	if err != nil {
		return nil, err
	}

	lockKey := db.GenerationLockKey(teamID.String(), input.StartDate, input.EndDate)

	err = uc.txManager.WithAdvisoryLock(ctx, lockKey, func(ctx context.Context) error {
		if err := uc.scheduleRepo.Save(ctx, result.Schedule); err != nil {
			return err
		}
		if err := uc.assignmentRepo.SaveAll(ctx, result.Assignments); err != nil {
			return err
		}
		if err := uc.auditRepo.SaveAll(ctx, teamID, result.Schedule.ID(), result.AuditLog.Entries()); err != nil {
			return err
		}
		return uc.fairnessRepo.ReplaceWindow(ctx, teamID, result.Ledger.Snapshot())
	})
	if err != nil {
		return nil, common.NewStorageFailureError(err)
	}

	slog.Info("schedule generated",
		"team_id", teamID.String(),
		"schedule_id", result.Schedule.ID().String(),
		"assignment_count", len(result.Assignments),
		"warning_count", len(result.Warnings),
	)
	for _, w := range result.Warnings {
		slog.Warn("generation warning",
			"team_id", teamID.String(),
			"schedule_id", result.Schedule.ID().String(),
			"kind", string(w.Kind),
			"message", w.Message,
		)
	}

	return &GenerateScheduleOutput{
		ScheduleID:  result.Schedule.ID().String(),
		Assignments: result.Assignments,
		Warnings:    result.Warnings,
	}, nil
}

func toAssignmentRecords(assignments []*schedule.Assignment) []ledger.AssignmentRecord {
	records := make([]ledger.AssignmentRecord, 0, len(assignments))
	for _, a := range assignments {
		rec := ledger.AssignmentRecord{MemberID: a.MemberID(), Kind: a.Kind(), Date: a.Date()}
		kind := scheduling.TaskKind(a.Kind())
		if kind.IsWeekly() {
			weekStart, _ := timeutil.WeekBucket(a.Date())
			rec.Week = weekStart
		}
		records = append(records, rec)
	}
	return records
}
