package member

import (
	"testing"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// =====================================================
// NewMember Tests - Success Cases
// =====================================================

func TestNewMember_Success(t *testing.T) {
	teamID := common.NewTeamID()
	displayName := "Test Member"
	officeDays := NewOfficeDays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	email := "test@example.com"

	member, err := NewMember(teamID, displayName, officeDays, email, RoleMember)

	if err != nil {
		t.Fatalf("NewMember() should succeed, but got error: %v", err)
	}
	if member == nil {
		t.Fatal("NewMember() returned nil")
	}

	if member.TeamID() != teamID {
		t.Errorf("TeamID: expected %s, got %s", teamID, member.TeamID())
	}
	if member.DisplayName() != displayName {
		t.Errorf("DisplayName: expected %s, got %s", displayName, member.DisplayName())
	}
	if !member.OfficeDays().ContainsAll(officeDays) {
		t.Error("OfficeDays should match what was passed in")
	}
	if member.Email() != email {
		t.Errorf("Email: expected %s, got %s", email, member.Email())
	}
	if member.Role() != RoleMember {
		t.Errorf("Role: expected %s, got %s", RoleMember, member.Role())
	}

	if !member.IsActive() {
		t.Error("IsActive should be true by default")
	}
	if member.IsDeleted() {
		t.Error("IsDeleted should be false by default")
	}

	if member.MemberID() == "" {
		t.Error("MemberID should not be empty")
	}

	if member.CreatedAt().IsZero() {
		t.Error("CreatedAt should not be zero")
	}
	if member.UpdatedAt().IsZero() {
		t.Error("UpdatedAt should not be zero")
	}
	if member.DeletedAt() != nil {
		t.Error("DeletedAt should be nil by default")
	}
}

func TestNewMember_SuccessWithOptionalFieldsEmpty(t *testing.T) {
	teamID := common.NewTeamID()
	displayName := "Test Member"

	member, err := NewMember(teamID, displayName, nil, "", "")

	if err != nil {
		t.Fatalf("NewMember() should succeed with empty optional fields, but got error: %v", err)
	}

	if member.Email() != "" {
		t.Error("Email should be empty")
	}
	if member.Role() != RoleMember {
		t.Error("Role should default to member when not specified")
	}
}

// =====================================================
// NewMember Tests - Error Cases
// =====================================================

func TestNewMember_ErrorWhenTeamIDEmpty(t *testing.T) {
	teamID := common.TeamID("")
	displayName := "Test Member"

	member, err := NewMember(teamID, displayName, nil, "", "")

	if err == nil {
		t.Fatal("NewMember() should return error when team_id is empty")
	}
	if member != nil {
		t.Error("NewMember() should return nil when validation fails")
	}
}

func TestNewMember_ErrorWhenDisplayNameEmpty(t *testing.T) {
	teamID := common.NewTeamID()

	member, err := NewMember(teamID, "", nil, "", "")

	if err == nil {
		t.Fatal("NewMember() should return error when display_name is empty")
	}
	if member != nil {
		t.Error("NewMember() should return nil when validation fails")
	}
}

func TestNewMember_ErrorWhenDisplayNameTooLong(t *testing.T) {
	teamID := common.NewTeamID()
	displayName := string(make([]byte, 256))

	member, err := NewMember(teamID, displayName, nil, "", "")

	if err == nil {
		t.Fatal("NewMember() should return error when display_name is too long")
	}
	if member != nil {
		t.Error("NewMember() should return nil when validation fails")
	}
}

func TestNewMember_ErrorWhenEmailTooLong(t *testing.T) {
	teamID := common.NewTeamID()
	displayName := "Test Member"
	email := string(make([]byte, 256)) + "@example.com"

	member, err := NewMember(teamID, displayName, nil, email, "")

	if err == nil {
		t.Fatal("NewMember() should return error when email is too long")
	}
	if member != nil {
		t.Error("NewMember() should return nil when validation fails")
	}
}

func TestNewMember_ErrorWhenRoleInvalid(t *testing.T) {
	teamID := common.NewTeamID()

	member, err := NewMember(teamID, "Test Member", nil, "", Role("owner"))

	if err == nil {
		t.Fatal("NewMember() should return error when role is not admin or member")
	}
	if member != nil {
		t.Error("NewMember() should return nil when validation fails")
	}
}

// =====================================================
// OfficeDays Tests
// =====================================================

func TestOfficeDays_ContainsAll(t *testing.T) {
	full := NewOfficeDays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)
	required := NewOfficeDays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)

	if !full.ContainsAll(required) {
		t.Error("ContainsAll should be true when the set is a superset of required")
	}

	partial := NewOfficeDays(time.Monday, time.Tuesday)
	if partial.ContainsAll(required) {
		t.Error("ContainsAll should be false when the set is missing a required day")
	}
}

// =====================================================
// UpdateDisplayName Tests
// =====================================================

func TestMember_UpdateDisplayName_Success(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Old Name", nil, "", "")

	newName := "New Name"
	err := member.UpdateDisplayName(newName)

	if err != nil {
		t.Fatalf("UpdateDisplayName() should succeed, but got error: %v", err)
	}
	if member.DisplayName() != newName {
		t.Errorf("DisplayName: expected %s, got %s", newName, member.DisplayName())
	}
}

func TestMember_UpdateDisplayName_ErrorWhenEmpty(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Old Name", nil, "", "")

	err := member.UpdateDisplayName("")

	if err == nil {
		t.Fatal("UpdateDisplayName() should return error when display_name is empty")
	}
}

func TestMember_UpdateDisplayName_ErrorWhenTooLong(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Old Name", nil, "", "")

	err := member.UpdateDisplayName(string(make([]byte, 256)))

	if err == nil {
		t.Fatal("UpdateDisplayName() should return error when display_name is too long")
	}
}

// =====================================================
// UpdateOfficeDays Tests
// =====================================================

func TestMember_UpdateOfficeDays(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", NewOfficeDays(time.Monday), "", "")

	newDays := NewOfficeDays(time.Monday, time.Tuesday, time.Saturday)
	member.UpdateOfficeDays(newDays)

	if !member.OfficeDays().ContainsAll(newDays) {
		t.Error("OfficeDays should reflect the updated set")
	}
}

// =====================================================
// UpdateEmail Tests
// =====================================================

func TestMember_UpdateEmail_Success(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "old@example.com", "")

	newEmail := "new@example.com"
	err := member.UpdateEmail(newEmail)

	if err != nil {
		t.Fatalf("UpdateEmail() should succeed, but got error: %v", err)
	}
	if member.Email() != newEmail {
		t.Errorf("Email: expected %s, got %s", newEmail, member.Email())
	}
}

func TestMember_UpdateEmail_SuccessWhenEmpty(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "old@example.com", "")

	err := member.UpdateEmail("")

	if err != nil {
		t.Fatalf("UpdateEmail() should succeed with empty value, but got error: %v", err)
	}
	if member.Email() != "" {
		t.Error("Email should be empty")
	}
}

func TestMember_UpdateEmail_ErrorWhenTooLong(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "", "")

	err := member.UpdateEmail(string(make([]byte, 256)) + "@example.com")

	if err == nil {
		t.Fatal("UpdateEmail() should return error when email is too long")
	}
}

// =====================================================
// SetRole Tests
// =====================================================

func TestMember_SetRole_Success(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "", RoleMember)

	if err := member.SetRole(RoleAdmin); err != nil {
		t.Fatalf("SetRole() should succeed, but got error: %v", err)
	}
	if !member.IsAdmin() {
		t.Error("IsAdmin should be true after SetRole(RoleAdmin)")
	}
}

func TestMember_SetRole_ErrorWhenInvalid(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "", RoleMember)

	if err := member.SetRole(Role("owner")); err == nil {
		t.Fatal("SetRole() should return error for an unrecognized role")
	}
}

// =====================================================
// UpdateDetails Tests
// =====================================================

func TestMember_UpdateDetails_Success(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Old Name", nil, "", "")

	newDisplayName := "New Name"
	newOfficeDays := NewOfficeDays(time.Saturday)
	newEmail := "new@example.com"
	newIsActive := false

	err := member.UpdateDetails(newDisplayName, newOfficeDays, newEmail, newIsActive)

	if err != nil {
		t.Fatalf("UpdateDetails() should succeed, but got error: %v", err)
	}
	if member.DisplayName() != newDisplayName {
		t.Errorf("DisplayName: expected %s, got %s", newDisplayName, member.DisplayName())
	}
	if !member.OfficeDays().ContainsAll(newOfficeDays) {
		t.Error("OfficeDays should reflect the updated set")
	}
	if member.Email() != newEmail {
		t.Errorf("Email: expected %s, got %s", newEmail, member.Email())
	}
	if member.IsActive() != newIsActive {
		t.Errorf("IsActive: expected %t, got %t", newIsActive, member.IsActive())
	}
}

func TestMember_UpdateDetails_ErrorWhenDisplayNameEmpty(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Old Name", nil, "", "")

	err := member.UpdateDetails("", nil, "", true)

	if err == nil {
		t.Fatal("UpdateDetails() should return error when display_name is empty")
	}
}

// =====================================================
// Activate/Deactivate Tests
// =====================================================

func TestMember_ActivateDeactivate(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "", "")

	if !member.IsActive() {
		t.Error("Member should be active by default")
	}

	member.Deactivate()
	if member.IsActive() {
		t.Error("Member should be inactive after Deactivate()")
	}

	member.Activate()
	if !member.IsActive() {
		t.Error("Member should be active after Activate()")
	}
}

// =====================================================
// Delete Tests
// =====================================================

func TestMember_Delete(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "", "")

	if member.IsDeleted() {
		t.Error("Member should not be deleted by default")
	}
	if member.DeletedAt() != nil {
		t.Error("DeletedAt should be nil by default")
	}

	member.Delete()

	if !member.IsDeleted() {
		t.Error("Member should be deleted after Delete()")
	}
	if member.DeletedAt() == nil {
		t.Error("DeletedAt should not be nil after Delete()")
	}
}

// =====================================================
// ReconstructMember Tests
// =====================================================

func TestReconstructMember_Success(t *testing.T) {
	memberID := common.NewMemberID()
	teamID := common.NewTeamID()
	now := time.Now()
	displayName := "Test Member"
	email := "test@example.com"

	member, err := ReconstructMember(
		memberID,
		teamID,
		displayName,
		NewOfficeDays(time.Monday, time.Friday),
		email,
		RoleMember,
		true,
		now,
		now,
		nil,
	)

	if err != nil {
		t.Fatalf("ReconstructMember() should succeed, but got error: %v", err)
	}
	if member == nil {
		t.Fatal("ReconstructMember() returned nil")
	}
	if member.MemberID() != memberID {
		t.Errorf("MemberID: expected %s, got %s", memberID, member.MemberID())
	}
	if member.TeamID() != teamID {
		t.Errorf("TeamID: expected %s, got %s", teamID, member.TeamID())
	}
	if member.DisplayName() != displayName {
		t.Errorf("DisplayName: expected %s, got %s", displayName, member.DisplayName())
	}
}

func TestReconstructMember_WithDeletedAt(t *testing.T) {
	memberID := common.NewMemberID()
	teamID := common.NewTeamID()
	now := time.Now()
	deletedAt := now.Add(-time.Hour)

	member, err := ReconstructMember(
		memberID,
		teamID,
		"Deleted Member",
		nil,
		"",
		RoleMember,
		false,
		now,
		now,
		&deletedAt,
	)

	if err != nil {
		t.Fatalf("ReconstructMember() should succeed, but got error: %v", err)
	}
	if !member.IsDeleted() {
		t.Error("Member should be marked as deleted")
	}
	if member.DeletedAt() == nil {
		t.Error("DeletedAt should not be nil")
	}
}

func TestReconstructMember_ErrorWhenValidationFails(t *testing.T) {
	memberID := common.NewMemberID()
	teamID := common.TeamID("")
	now := time.Now()

	member, err := ReconstructMember(
		memberID,
		teamID,
		"Member",
		nil,
		"",
		RoleMember,
		true,
		now,
		now,
		nil,
	)

	if err == nil {
		t.Fatal("ReconstructMember() should return error when validation fails")
	}
	if member != nil {
		t.Error("ReconstructMember() should return nil when validation fails")
	}
}

// =====================================================
// UpdatedAt Timestamp Tests
// =====================================================

func TestMember_UpdateMethodsUpdateTimestamp(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "", "")

	originalUpdatedAt := member.UpdatedAt()

	time.Sleep(1 * time.Millisecond)

	_ = member.UpdateDisplayName("New Name")

	if !member.UpdatedAt().After(originalUpdatedAt) {
		t.Error("UpdatedAt should be updated after UpdateDisplayName()")
	}
}

func TestMember_DeactivateUpdatesTimestamp(t *testing.T) {
	teamID := common.NewTeamID()
	member, _ := NewMember(teamID, "Member", nil, "", "")

	originalUpdatedAt := member.UpdatedAt()

	time.Sleep(1 * time.Millisecond)

	member.Deactivate()

	if !member.UpdatedAt().After(originalUpdatedAt) {
		t.Error("UpdatedAt should be updated after Deactivate()")
	}
}
