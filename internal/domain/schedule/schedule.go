// Package schedule holds the Schedule and Assignment aggregates: the
// versioned record a generation produces, and its status machine
// (draft -> published -> archived).
package schedule

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// Status is a Schedule's lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return nil
	default:
		return common.NewValidationError("invalid schedule status: "+string(s), nil)
	}
}

// Schedule is the versioned record a generation produces. Only draft
// permits free editing; published permits swap/reassign; archived is
// read-only.
type Schedule struct {
	id                    common.ScheduleID
	teamID                common.TeamID
	startDate             time.Time
	endDate               time.Time
	status                Status
	seed                  int64
	fairnessAggressiveness int
	createdAt             time.Time
	updatedAt             time.Time
}

// NewSchedule constructs a fresh draft Schedule.
func NewSchedule(teamID common.TeamID, startDate, endDate time.Time, seed int64, aggressiveness int) (*Schedule, error) {
	now := time.Now()
	s := &Schedule{
		id:                    common.NewScheduleID(),
		teamID:                teamID,
		startDate:             startDate,
		endDate:               endDate,
		status:                StatusDraft,
		seed:                  seed,
		fairnessAggressiveness: aggressiveness,
		createdAt:             now,
		updatedAt:             now,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReconstructSchedule rebuilds a Schedule from storage.
func ReconstructSchedule(
	id common.ScheduleID, teamID common.TeamID, startDate, endDate time.Time,
	status Status, seed int64, aggressiveness int, createdAt, updatedAt time.Time,
) (*Schedule, error) {
	s := &Schedule{
		id: id, teamID: teamID, startDate: startDate, endDate: endDate,
		status: status, seed: seed, fairnessAggressiveness: aggressiveness,
		createdAt: createdAt, updatedAt: updatedAt,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schedule) validate() error {
	if s.teamID == "" {
		return common.NewValidationError("team_id is required", nil)
	}
	if s.endDate.Before(s.startDate) {
		return common.NewValidationError("end_date must not be before start_date", nil)
	}
	if s.fairnessAggressiveness < 1 || s.fairnessAggressiveness > 5 {
		return common.NewValidationError("fairness_aggressiveness must be between 1 and 5", nil)
	}
	return s.status.Validate()
}

func (s *Schedule) ID() common.ScheduleID         { return s.id }
func (s *Schedule) TeamID() common.TeamID         { return s.teamID }
func (s *Schedule) StartDate() time.Time          { return s.startDate }
func (s *Schedule) EndDate() time.Time            { return s.endDate }
func (s *Schedule) Status() Status                { return s.status }
func (s *Schedule) Seed() int64                   { return s.seed }
func (s *Schedule) FairnessAggressiveness() int   { return s.fairnessAggressiveness }
func (s *Schedule) CreatedAt() time.Time          { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time          { return s.updatedAt }

// Publish transitions draft -> published.
func (s *Schedule) Publish() error {
	if s.status != StatusDraft {
		return common.NewInvariantViolationError("only a draft schedule can be published")
	}
	s.status = StatusPublished
	s.updatedAt = time.Now()
	return nil
}

// Archive transitions published -> archived.
func (s *Schedule) Archive() error {
	if s.status != StatusPublished {
		return common.NewInvariantViolationError("only a published schedule can be archived")
	}
	s.status = StatusArchived
	s.updatedAt = time.Now()
	return nil
}

// AllowsEditing reports whether Assignments may be freely rewritten
// (draft only).
func (s *Schedule) AllowsEditing() bool {
	return s.status == StatusDraft
}

// AllowsSwap reports whether swap/reassign operations are permitted
// (published only).
func (s *Schedule) AllowsSwap() bool {
	return s.status == StatusPublished
}
