package rest

import (
	"encoding/json"
	"net/http"
	"time"

	appmember "github.com/erenoa/vrc-shift-scheduler/backend/internal/app/member"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/member"
	"github.com/go-chi/chi/v5"
)

// MemberHandler handles member-related HTTP requests.
type MemberHandler struct {
	createMemberUC *appmember.CreateMemberUsecase
	listMembersUC  *appmember.ListMembersUsecase
	getMemberUC    *appmember.GetMemberUsecase
	updateMemberUC *appmember.UpdateMemberUsecase
	deleteMemberUC *appmember.DeleteMemberUsecase
	bulkImportUC   *appmember.BulkImportMembersUsecase
}

// NewMemberHandler creates a new MemberHandler with injected usecases.
func NewMemberHandler(
	createMemberUC *appmember.CreateMemberUsecase,
	listMembersUC *appmember.ListMembersUsecase,
	getMemberUC *appmember.GetMemberUsecase,
	updateMemberUC *appmember.UpdateMemberUsecase,
	deleteMemberUC *appmember.DeleteMemberUsecase,
	bulkImportUC *appmember.BulkImportMembersUsecase,
) *MemberHandler {
	return &MemberHandler{
		createMemberUC: createMemberUC,
		listMembersUC:  listMembersUC,
		getMemberUC:    getMemberUC,
		updateMemberUC: updateMemberUC,
		deleteMemberUC: deleteMemberUC,
		bulkImportUC:   bulkImportUC,
	}
}

// CreateMemberRequest is the request body for creating a member.
type CreateMemberRequest struct {
	DisplayName string   `json:"display_name"`
	OfficeDays  []int    `json:"office_days"` // 0=Sunday .. 6=Saturday
	Email       string   `json:"email"`
	Role        string   `json:"role"`
}

// UpdateMemberRequest is the request body for updating a member.
type UpdateMemberRequest struct {
	DisplayName string `json:"display_name"`
	OfficeDays  []int  `json:"office_days"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
}

// MemberResponse represents a member in API responses.
type MemberResponse struct {
	MemberID    string   `json:"member_id"`
	TeamID      string   `json:"team_id"`
	DisplayName string   `json:"display_name"`
	OfficeDays  []string `json:"office_days"`
	Email       string   `json:"email,omitempty"`
	Role        string   `json:"role"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toWeekdays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			out = append(out, time.Weekday(d))
		}
	}
	return out
}

func formatMemberOfficeDays(days member.OfficeDays) []string {
	names := []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
	result := make([]string, 0, len(days))
	for _, d := range names {
		if days.Contains(d) {
			result = append(result, d.String())
		}
	}
	return result
}

func memberToResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		MemberID:    m.MemberID().String(),
		TeamID:      m.TeamID().String(),
		DisplayName: m.DisplayName(),
		OfficeDays:  formatMemberOfficeDays(m.OfficeDays()),
		Email:       m.Email(),
		Role:        string(m.Role()),
		IsActive:    m.IsActive(),
		CreatedAt:   m.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt().Format(time.RFC3339),
	}
}

// CreateMember handles POST /api/v1/members
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}
	if req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "display_name is required", nil)
		return
	}

	role := member.Role(req.Role)
	if role == "" {
		role = member.RoleMember
	}

	newMember, err := h.createMemberUC.Execute(ctx, appmember.CreateMemberInput{
		TeamID:      teamID,
		DisplayName: req.DisplayName,
		OfficeDays:  toWeekdays(req.OfficeDays),
		Email:       req.Email,
		Role:        role,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondCreated(w, memberToResponse(newMember))
}

// UpdateMember handles PUT /api/v1/members/{member_id}
func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	memberIDStr := chi.URLParam(r, "member_id")
	if memberIDStr == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "member_id is required", nil)
		return
	}

	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}
	if req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "display_name is required", nil)
		return
	}

	output, err := h.updateMemberUC.Execute(ctx, appmember.UpdateMemberInput{
		TeamID:      teamID.String(),
		MemberID:    memberIDStr,
		DisplayName: req.DisplayName,
		OfficeDays:  toWeekdays(req.OfficeDays),
		Email:       req.Email,
		IsActive:    req.IsActive,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, output)
}

// ListMembers handles GET /api/v1/members
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	var isActive *bool
	switch r.URL.Query().Get("is_active") {
	case "true":
		v := true
		isActive = &v
	case "false":
		v := false
		isActive = &v
	}

	members, err := h.listMembersUC.Execute(ctx, appmember.ListMembersInput{TeamID: teamID, IsActive: isActive})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	responses := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, memberToResponse(m))
	}
	RespondSuccess(w, map[string]interface{}{
		"members": responses,
		"count":   len(responses),
	})
}

// GetMember handles GET /api/v1/members/{member_id}
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	memberIDStr := chi.URLParam(r, "member_id")
	memberID, err := common.ParseMemberID(memberIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid member_id format", nil)
		return
	}

	m, err := h.getMemberUC.Execute(ctx, appmember.GetMemberInput{TeamID: teamID, MemberID: memberID})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, memberToResponse(m))
}

// DeleteMember handles DELETE /api/v1/members/{member_id}
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	memberIDStr := chi.URLParam(r, "member_id")
	memberID, err := common.ParseMemberID(memberIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid member_id format", nil)
		return
	}

	if err := h.deleteMemberUC.Execute(ctx, appmember.DeleteMemberInput{TeamID: teamID, MemberID: memberID}); err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondNoContent(w)
}

// BulkImportMembersRequest is the request body for bulk importing members.
type BulkImportMembersRequest struct {
	Members []BulkImportMemberRequest `json:"members"`
}

// BulkImportMemberRequest describes one member in a bulk import request.
type BulkImportMemberRequest struct {
	DisplayName string `json:"display_name"`
	OfficeDays  []int  `json:"office_days"`
	Email       string `json:"email"`
}

const maxBulkImportMembers = 100

// BulkImportMembers handles POST /api/v1/members/bulk-import
func (h *MemberHandler) BulkImportMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	var req BulkImportMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}
	if len(req.Members) == 0 {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "members array is required and must not be empty", nil)
		return
	}
	if len(req.Members) > maxBulkImportMembers {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "maximum 100 members can be imported at once", nil)
		return
	}

	inputs := make([]appmember.BulkImportMemberInput, len(req.Members))
	for i, m := range req.Members {
		inputs[i] = appmember.BulkImportMemberInput{
			DisplayName: m.DisplayName,
			OfficeDays:  toWeekdays(m.OfficeDays),
			Email:       m.Email,
		}
	}

	output, err := h.bulkImportUC.Execute(ctx, appmember.BulkImportMembersInput{TeamID: teamID, Members: inputs})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, output)
}
