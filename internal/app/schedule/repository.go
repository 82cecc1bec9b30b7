package schedule

import (
	"context"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
)

// FairnessCountRepository persists the ledger's current-window snapshot.
type FairnessCountRepository interface {
	// ReplaceWindow overwrites every FairnessCount row for teamID with
	// rows, atomically with the rest of a generation's commit.
	ReplaceWindow(ctx context.Context, teamID common.TeamID, rows []ledger.FairnessCount) error
	FindByTeamID(ctx context.Context, teamID common.TeamID) ([]ledger.FairnessCount, error)
}

// AuditEntryRepository persists the Audit Log produced by a generation
// or a swap/reassign.
type AuditEntryRepository interface {
	SaveAll(ctx context.Context, teamID common.TeamID, scheduleID common.ScheduleID, entries []scheduling.AuditEntry) error
	FindByScheduleID(ctx context.Context, teamID common.TeamID, scheduleID common.ScheduleID) ([]scheduling.AuditEntry, error)
}
