package schedule

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
)

// ListAuditEntriesInput identifies the schedule whose decisions should
// be retrieved.
type ListAuditEntriesInput struct {
	TeamID     string
	ScheduleID string
}

// ListAuditEntriesUsecase retrieves the Audit Log for a schedule. An
// audit log nobody can read is not auditable, so this is exposed as its
// own usecase rather than buried inside generation.
type ListAuditEntriesUsecase struct {
	auditRepo AuditEntryRepository
}

// NewListAuditEntriesUsecase constructs a ListAuditEntriesUsecase.
func NewListAuditEntriesUsecase(auditRepo AuditEntryRepository) *ListAuditEntriesUsecase {
	return &ListAuditEntriesUsecase{auditRepo: auditRepo}
}

// Execute retrieves every AuditEntry recorded for a schedule.
func (uc *ListAuditEntriesUsecase) Execute(ctx context.Context, input ListAuditEntriesInput) ([]scheduling.AuditEntry, error) {
	teamID, err := common.ParseTeamID(input.TeamID)
	if err != nil {
		return nil, err
	}
	scheduleID, err := common.ParseScheduleID(input.ScheduleID)
	if err != nil {
		return nil, err
	}
	return uc.auditRepo.FindByScheduleID(ctx, teamID, scheduleID)
}
