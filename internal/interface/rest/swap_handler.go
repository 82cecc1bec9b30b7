package rest

import (
	"encoding/json"
	"net/http"

	appswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/app/swap"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	domainswap "github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/swap"
	"github.com/go-chi/chi/v5"
)

// SwapHandler handles swap-lifecycle HTTP requests.
type SwapHandler struct {
	proposeUC    *appswap.ProposeSwapUsecase
	decidePeerUC *appswap.DecidePeerUsecase
	decideAdminUC *appswap.DecideAdminUsecase
	getSwapUC    *appswap.GetSwapUsecase
}

// NewSwapHandler creates a new SwapHandler with injected usecases.
func NewSwapHandler(
	proposeUC *appswap.ProposeSwapUsecase,
	decidePeerUC *appswap.DecidePeerUsecase,
	decideAdminUC *appswap.DecideAdminUsecase,
	getSwapUC *appswap.GetSwapUsecase,
) *SwapHandler {
	return &SwapHandler{
		proposeUC:     proposeUC,
		decidePeerUC:  decidePeerUC,
		decideAdminUC: decideAdminUC,
		getSwapUC:     getSwapUC,
	}
}

// SwapResponse represents a swap in API responses.
type SwapResponse struct {
	SwapID           string `json:"swap_id"`
	TeamID           string `json:"team_id"`
	AssignmentID     string `json:"assignment_id"`
	RequestedBy      string `json:"requested_by"`
	ProposedMemberID string `json:"proposed_member_id"`
	Reason           string `json:"reason,omitempty"`
	PeerDecision     string `json:"peer_decision"`
	AdminDecision    string `json:"admin_decision"`
	State            string `json:"state"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func swapToResponse(s *domainswap.Swap) SwapResponse {
	return SwapResponse{
		SwapID:           s.ID().String(),
		TeamID:           s.TeamID().String(),
		AssignmentID:     s.AssignmentID().String(),
		RequestedBy:      s.RequestedBy().String(),
		ProposedMemberID: s.ProposedMemberID().String(),
		Reason:           s.Reason(),
		PeerDecision:     string(s.PeerDecision()),
		AdminDecision:    string(s.AdminDecision()),
		State:            string(s.State()),
		CreatedAt:        s.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        s.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ProposeSwapRequest is the request body for POST /api/v1/swaps
type ProposeSwapRequest struct {
	AssignmentID     string `json:"assignment_id"`
	ProposedMemberID string `json:"proposed_member_id"`
	Reason           string `json:"reason"`
}

// ProposeSwap handles POST /api/v1/swaps
func (h *SwapHandler) ProposeSwap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}
	requestedBy, ok := GetMemberID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "member ID is required", nil)
		return
	}

	var req ProposeSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}
	if req.AssignmentID == "" || req.ProposedMemberID == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "assignment_id and proposed_member_id are required", nil)
		return
	}

	s, err := h.proposeUC.Execute(ctx, appswap.ProposeSwapInput{
		TeamID:           teamID.String(),
		AssignmentID:     req.AssignmentID,
		RequestedBy:      requestedBy.String(),
		ProposedMemberID: req.ProposedMemberID,
		Reason:           req.Reason,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondCreated(w, swapToResponse(s))
}

// DecidePeerRequest is the request body for POST /api/v1/swaps/{swap_id}/peer-decision
type DecidePeerRequest struct {
	Decision string `json:"decision"`
}

// DecidePeer handles POST /api/v1/swaps/{swap_id}/peer-decision
func (h *SwapHandler) DecidePeer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}
	swapIDStr := chi.URLParam(r, "swap_id")
	if swapIDStr == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "swap_id is required", nil)
		return
	}

	var req DecidePeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}

	s, err := h.decidePeerUC.Execute(ctx, appswap.DecidePeerInput{
		TeamID:   teamID.String(),
		SwapID:   swapIDStr,
		Decision: domainswap.PeerDecision(req.Decision),
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, swapToResponse(s))
}

// DecideAdminRequest is the request body for POST /api/v1/swaps/{swap_id}/admin-decision
type DecideAdminRequest struct {
	Decision string `json:"decision"`
}

// DecideAdmin handles POST /api/v1/swaps/{swap_id}/admin-decision
func (h *SwapHandler) DecideAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}
	swapIDStr := chi.URLParam(r, "swap_id")
	if swapIDStr == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "swap_id is required", nil)
		return
	}

	var req DecideAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}

	s, err := h.decideAdminUC.Execute(ctx, appswap.DecideAdminInput{
		TeamID:   teamID.String(),
		SwapID:   swapIDStr,
		Decision: domainswap.AdminDecision(req.Decision),
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, swapToResponse(s))
}

// GetSwap handles GET /api/v1/swaps/{swap_id}
func (h *SwapHandler) GetSwap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}
	swapIDStr := chi.URLParam(r, "swap_id")
	if swapIDStr == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "swap_id is required", nil)
		return
	}
	if _, err := common.ParseSwapID(swapIDStr); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid swap_id format", nil)
		return
	}

	s, err := h.getSwapUC.Execute(ctx, appswap.GetSwapInput{TeamID: teamID.String(), SwapID: swapIDStr})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, swapToResponse(s))
}
