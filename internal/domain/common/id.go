package common

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULIDWithTime generates a new ULID using the provided time.
// This is the preferred function for testability.
func NewULIDWithTime(t time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// NewULID generates a new ULID using the current time.
// Deprecated: Use NewULIDWithTime for better testability. This function will be removed in a future version.
func NewULID() string {
	return NewULIDWithTime(time.Now())
}

// ValidateULID validates if a string is a valid ULID
func ValidateULID(id string) error {
	if len(id) != 26 {
		return NewValidationError(fmt.Sprintf("invalid ULID length: expected 26, got %d", len(id)), nil)
	}
	_, err := ulid.Parse(id)
	if err != nil {
		return NewValidationError("invalid ULID format", err)
	}
	return nil
}

// TeamID represents the operations team a schedule, member and ledger
// belong to. Every repository method takes a TeamID as its scoping
// parameter so one store can serve multiple teams without data leaking
// across them.
type TeamID string

// NewTeamIDWithTime creates a new TeamID using the provided time.
func NewTeamIDWithTime(t time.Time) TeamID {
	return TeamID(NewULIDWithTime(t))
}

// NewTeamID creates a new TeamID using the current time.
// Deprecated: Use NewTeamIDWithTime for better testability.
func NewTeamID() TeamID {
	return TeamID(NewULID())
}

func (id TeamID) String() string {
	return string(id)
}

func (id TeamID) Validate() error {
	if id == "" {
		return NewValidationError("team_id is required", nil)
	}
	return ValidateULID(string(id))
}

func ParseTeamID(s string) (TeamID, error) {
	if err := ValidateULID(s); err != nil {
		return "", err
	}
	return TeamID(s), nil
}

// MemberID represents a member identifier
type MemberID string

// NewMemberIDWithTime creates a new MemberID using the provided time.
func NewMemberIDWithTime(t time.Time) MemberID {
	return MemberID(NewULIDWithTime(t))
}

// NewMemberID creates a new MemberID using the current time.
// Deprecated: Use NewMemberIDWithTime for better testability.
func NewMemberID() MemberID {
	return MemberID(NewULID())
}

func (id MemberID) String() string {
	return string(id)
}

func (id MemberID) Validate() error {
	if id == "" {
		return NewValidationError("member_id is required", nil)
	}
	return ValidateULID(string(id))
}

func ParseMemberID(s string) (MemberID, error) {
	if err := ValidateULID(s); err != nil {
		return "", err
	}
	return MemberID(s), nil
}

// ScheduleID represents a generated schedule identifier
type ScheduleID string

// NewScheduleIDWithTime creates a new ScheduleID using the provided time.
func NewScheduleIDWithTime(t time.Time) ScheduleID {
	return ScheduleID(NewULIDWithTime(t))
}

// NewScheduleID creates a new ScheduleID using the current time.
// Deprecated: Use NewScheduleIDWithTime for better testability.
func NewScheduleID() ScheduleID {
	return ScheduleID(NewULID())
}

func (id ScheduleID) String() string {
	return string(id)
}

func (id ScheduleID) Validate() error {
	if id == "" {
		return NewValidationError("schedule_id is required", nil)
	}
	return ValidateULID(string(id))
}

func ParseScheduleID(s string) (ScheduleID, error) {
	if err := ValidateULID(s); err != nil {
		return "", err
	}
	return ScheduleID(s), nil
}

// AssignmentID represents a single (date|week, kind, shift_label, member)
// assignment identifier.
type AssignmentID string

// NewAssignmentIDWithTime creates a new AssignmentID using the provided time.
func NewAssignmentIDWithTime(t time.Time) AssignmentID {
	return AssignmentID(NewULIDWithTime(t))
}

// NewAssignmentID creates a new AssignmentID using the current time.
// Deprecated: Use NewAssignmentIDWithTime for better testability.
func NewAssignmentID() AssignmentID {
	return AssignmentID(NewULID())
}

func (id AssignmentID) String() string {
	return string(id)
}

func (id AssignmentID) Validate() error {
	if id == "" {
		return NewValidationError("assignment_id is required", nil)
	}
	return ValidateULID(string(id))
}

func ParseAssignmentID(s string) (AssignmentID, error) {
	if err := ValidateULID(s); err != nil {
		return "", err
	}
	return AssignmentID(s), nil
}

// UnavailablePeriodID represents an unavailability window identifier.
type UnavailablePeriodID string

// NewUnavailablePeriodIDWithTime creates a new UnavailablePeriodID using the provided time.
func NewUnavailablePeriodIDWithTime(t time.Time) UnavailablePeriodID {
	return UnavailablePeriodID(NewULIDWithTime(t))
}

// NewUnavailablePeriodID creates a new UnavailablePeriodID using the current time.
// Deprecated: Use NewUnavailablePeriodIDWithTime for better testability.
func NewUnavailablePeriodID() UnavailablePeriodID {
	return UnavailablePeriodID(NewULID())
}

func (id UnavailablePeriodID) String() string {
	return string(id)
}

func (id UnavailablePeriodID) Validate() error {
	if id == "" {
		return NewValidationError("unavailable_period_id is required", nil)
	}
	return ValidateULID(string(id))
}

func ParseUnavailablePeriodID(s string) (UnavailablePeriodID, error) {
	if err := ValidateULID(s); err != nil {
		return "", err
	}
	return UnavailablePeriodID(s), nil
}

// SwapID represents a swap request identifier.
type SwapID string

// NewSwapIDWithTime creates a new SwapID using the provided time.
func NewSwapIDWithTime(t time.Time) SwapID {
	return SwapID(NewULIDWithTime(t))
}

// NewSwapID creates a new SwapID using the current time.
// Deprecated: Use NewSwapIDWithTime for better testability.
func NewSwapID() SwapID {
	return SwapID(NewULID())
}

func (id SwapID) String() string {
	return string(id)
}

func (id SwapID) Validate() error {
	if id == "" {
		return NewValidationError("swap_id is required", nil)
	}
	return ValidateULID(string(id))
}

func ParseSwapID(s string) (SwapID, error) {
	if err := ValidateULID(s); err != nil {
		return "", err
	}
	return SwapID(s), nil
}

// AuditEntryID represents an audit log entry identifier.
type AuditEntryID string

// NewAuditEntryIDWithTime creates a new AuditEntryID using the provided time.
func NewAuditEntryIDWithTime(t time.Time) AuditEntryID {
	return AuditEntryID(NewULIDWithTime(t))
}

// NewAuditEntryID creates a new AuditEntryID using the current time.
// Deprecated: Use NewAuditEntryIDWithTime for better testability.
func NewAuditEntryID() AuditEntryID {
	return AuditEntryID(NewULID())
}

func (id AuditEntryID) String() string {
	return string(id)
}

func (id AuditEntryID) Validate() error {
	if id == "" {
		return NewValidationError("audit_entry_id is required", nil)
	}
	return ValidateULID(string(id))
}

func ParseAuditEntryID(s string) (AuditEntryID, error) {
	if err := ValidateULID(s); err != nil {
		return "", err
	}
	return AuditEntryID(s), nil
}
