// Package availability resolves whether a member is available on a given
// date, from the UnavailablePeriods recorded against them. It is a pure
// read view: it has no knowledge of ATM rest days, which live in the
// scheduling package's own per-generation state.
package availability

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// UnavailablePeriod represents a whole-day unavailability window for a
// member. Created by the member or an admin; immutable except by
// deletion.
type UnavailablePeriod struct {
	id        common.UnavailablePeriodID
	teamID    common.TeamID
	memberID  common.MemberID
	startDate time.Time
	endDate   time.Time
	reason    string
	createdAt time.Time
}

// NewUnavailablePeriod constructs a new UnavailablePeriod.
func NewUnavailablePeriod(teamID common.TeamID, memberID common.MemberID, startDate, endDate time.Time, reason string) (*UnavailablePeriod, error) {
	p := &UnavailablePeriod{
		id:        common.NewUnavailablePeriodID(),
		teamID:    teamID,
		memberID:  memberID,
		startDate: startDate,
		endDate:   endDate,
		reason:    reason,
		createdAt: time.Now(),
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ReconstructUnavailablePeriod rebuilds an UnavailablePeriod from storage.
func ReconstructUnavailablePeriod(id common.UnavailablePeriodID, teamID common.TeamID, memberID common.MemberID, startDate, endDate time.Time, reason string, createdAt time.Time) (*UnavailablePeriod, error) {
	p := &UnavailablePeriod{
		id:        id,
		teamID:    teamID,
		memberID:  memberID,
		startDate: startDate,
		endDate:   endDate,
		reason:    reason,
		createdAt: createdAt,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *UnavailablePeriod) validate() error {
	if p.teamID == "" {
		return common.NewValidationError("team_id is required", nil)
	}
	if p.memberID == "" {
		return common.NewValidationError("member_id is required", nil)
	}
	if p.endDate.Before(p.startDate) {
		return common.NewValidationError("end_date must not be before start_date", nil)
	}
	return nil
}

func (p *UnavailablePeriod) ID() common.UnavailablePeriodID { return p.id }
func (p *UnavailablePeriod) TeamID() common.TeamID          { return p.teamID }
func (p *UnavailablePeriod) MemberID() common.MemberID      { return p.memberID }
func (p *UnavailablePeriod) StartDate() time.Time           { return p.startDate }
func (p *UnavailablePeriod) EndDate() time.Time             { return p.endDate }
func (p *UnavailablePeriod) Reason() string                 { return p.reason }
func (p *UnavailablePeriod) CreatedAt() time.Time           { return p.createdAt }

// Covers reports whether date falls within this period, inclusive.
func (p *UnavailablePeriod) Covers(date time.Time) bool {
	return !date.Before(p.startDate) && !date.After(p.endDate)
}

// Overlaps reports whether this period shares any day with [start, end].
func (p *UnavailablePeriod) Overlaps(start, end time.Time) bool {
	return !p.startDate.After(end) && !start.After(p.endDate)
}
