package member

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// Weekday is a single day of the week used for office-day membership.
// Values mirror time.Weekday (Sunday = 0) so OfficeDays can be built
// directly from time.Time.Weekday() without translation.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// OfficeDays is a set of weekdays a member is physically in the office.
type OfficeDays map[time.Weekday]bool

// NewOfficeDays builds an OfficeDays set from the given weekdays.
func NewOfficeDays(days ...time.Weekday) OfficeDays {
	set := make(OfficeDays, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// Contains reports whether d is one of the member's office days.
func (o OfficeDays) Contains(d time.Weekday) bool {
	return o[d]
}

// ContainsAll reports whether every day in required is in o.
func (o OfficeDays) ContainsAll(required OfficeDays) bool {
	for d := range required {
		if !o[d] {
			return false
		}
	}
	return true
}

// Role distinguishes a member who may approve swaps and trigger
// generation from a regular team member.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleMember:
		return nil
	default:
		return common.NewValidationError("role must be admin or member", nil)
	}
}

// Member represents a team member entity (aggregate root).
type Member struct {
	memberID    common.MemberID
	teamID      common.TeamID
	displayName string
	officeDays  OfficeDays
	email       string
	role        Role
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewMember creates a new Member entity.
func NewMember(
	teamID common.TeamID,
	displayName string,
	officeDays OfficeDays,
	email string,
	role Role,
) (*Member, error) {
	m := &Member{
		memberID:    common.NewMemberID(),
		teamID:      teamID,
		displayName: displayName,
		officeDays:  officeDays,
		email:       email,
		role:        role,
		isActive:    true,
		createdAt:   time.Now(),
		updatedAt:   time.Now(),
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// ReconstructMember reconstructs a Member entity from persistence.
func ReconstructMember(
	memberID common.MemberID,
	teamID common.TeamID,
	displayName string,
	officeDays OfficeDays,
	email string,
	role Role,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Member, error) {
	m := &Member{
		memberID:    memberID,
		teamID:      teamID,
		displayName: displayName,
		officeDays:  officeDays,
		email:       email,
		role:        role,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Member) validate() error {
	if err := m.teamID.Validate(); err != nil {
		return common.NewValidationError("team_id is required", err)
	}

	if m.displayName == "" {
		return common.NewValidationError("display_name is required", nil)
	}

	if len(m.displayName) > 255 {
		return common.NewValidationError("display_name must be less than 255 characters", nil)
	}

	if m.email != "" && len(m.email) > 255 {
		return common.NewValidationError("email must be less than 255 characters", nil)
	}

	role := m.role
	if role == "" {
		role = RoleMember
		m.role = role
	}
	if err := role.Validate(); err != nil {
		return err
	}

	return nil
}

// Getters

func (m *Member) MemberID() common.MemberID {
	return m.memberID
}

func (m *Member) TeamID() common.TeamID {
	return m.teamID
}

func (m *Member) DisplayName() string {
	return m.displayName
}

func (m *Member) OfficeDays() OfficeDays {
	return m.officeDays
}

func (m *Member) Email() string {
	return m.email
}

func (m *Member) Role() Role {
	return m.role
}

func (m *Member) IsAdmin() bool {
	return m.role == RoleAdmin
}

func (m *Member) IsActive() bool {
	return m.isActive
}

func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Member) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Member) DeletedAt() *time.Time {
	return m.deletedAt
}

func (m *Member) IsDeleted() bool {
	return m.deletedAt != nil
}

// UpdateDetails updates multiple member details at once.
func (m *Member) UpdateDetails(displayName string, officeDays OfficeDays, email string, isActive bool) error {
	m.displayName = displayName
	m.officeDays = officeDays
	m.email = email
	m.isActive = isActive
	m.updatedAt = time.Now()

	return m.validate()
}

// UpdateDisplayName updates the display name.
func (m *Member) UpdateDisplayName(displayName string) error {
	if displayName == "" {
		return common.NewValidationError("display_name is required", nil)
	}
	if len(displayName) > 255 {
		return common.NewValidationError("display_name must be less than 255 characters", nil)
	}

	m.displayName = displayName
	m.updatedAt = time.Now()
	return nil
}

// UpdateOfficeDays replaces the member's office-day set.
func (m *Member) UpdateOfficeDays(officeDays OfficeDays) {
	m.officeDays = officeDays
	m.updatedAt = time.Now()
}

// UpdateEmail updates the email address.
func (m *Member) UpdateEmail(email string) error {
	if email != "" && len(email) > 255 {
		return common.NewValidationError("email must be less than 255 characters", nil)
	}

	m.email = email
	m.updatedAt = time.Now()
	return nil
}

// SetRole changes the member's role.
func (m *Member) SetRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	m.updatedAt = time.Now()
	return nil
}

// Activate activates the member.
func (m *Member) Activate() {
	m.isActive = true
	m.updatedAt = time.Now()
}

// Deactivate deactivates the member. A deactivated member is never
// selected by the scheduler but its assignment history is preserved.
func (m *Member) Deactivate() {
	m.isActive = false
	m.updatedAt = time.Now()
}

// Delete marks the member as deleted (soft delete). The scheduler never
// destroys a member record outright, per lifecycle rules.
func (m *Member) Delete() {
	now := time.Now()
	m.deletedAt = &now
	m.updatedAt = now
}
