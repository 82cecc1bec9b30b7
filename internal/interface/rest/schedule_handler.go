package rest

import (
	"encoding/json"
	"net/http"
	"time"

	appschedule "github.com/erenoa/vrc-shift-scheduler/backend/internal/app/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/schedule"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
	"github.com/go-chi/chi/v5"
)

// ScheduleHandler handles schedule-generation and audit HTTP requests.
type ScheduleHandler struct {
	generateUC           *appschedule.GenerateScheduleUsecase
	recomputeLedgerUC    *appschedule.RecomputeLedgerUsecase
	listAuditEntriesUC   *appschedule.ListAuditEntriesUsecase
}

// NewScheduleHandler creates a new ScheduleHandler with injected usecases.
func NewScheduleHandler(
	generateUC *appschedule.GenerateScheduleUsecase,
	recomputeLedgerUC *appschedule.RecomputeLedgerUsecase,
	listAuditEntriesUC *appschedule.ListAuditEntriesUsecase,
) *ScheduleHandler {
	return &ScheduleHandler{
		generateUC:         generateUC,
		recomputeLedgerUC:  recomputeLedgerUC,
		listAuditEntriesUC: listAuditEntriesUC,
	}
}

// GenerateScheduleRequest is the request body for POST /api/v1/schedules/generate
type GenerateScheduleRequest struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Seed           int64  `json:"seed"`
	Aggressiveness int    `json:"fairness_aggressiveness"`
}

// AssignmentResponse represents an assignment in API responses.
type AssignmentResponse struct {
	AssignmentID string `json:"assignment_id"`
	ScheduleID   string `json:"schedule_id"`
	Date         string `json:"date"`
	Kind         string `json:"kind"`
	ShiftLabel   string `json:"shift_label"`
	MemberID     string `json:"member_id"`
	Status       string `json:"status"`
}

// WarningResponse represents a generation warning in API responses.
type WarningResponse struct {
	Kind    string `json:"kind"`
	Date    string `json:"date,omitempty"`
	Task    string `json:"task,omitempty"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message"`
}

func assignmentToResponse(a *schedule.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.ID().String(),
		ScheduleID:   a.ScheduleID().String(),
		Date:         a.Date().Format("2006-01-02"),
		Kind:         a.Kind(),
		ShiftLabel:   a.ShiftLabel(),
		MemberID:     a.MemberID().String(),
		Status:       string(a.Status()),
	}
}

func warningToResponse(w scheduling.Warning) WarningResponse {
	resp := WarningResponse{Kind: string(w.Kind), Task: string(w.Task), Label: w.Label, Message: w.Message}
	if !w.Date.IsZero() {
		resp.Date = w.Date.Format("2006-01-02")
	}
	return resp
}

// GenerateSchedule handles POST /api/v1/schedules/generate
func (h *ScheduleHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	var req GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "start_date must be YYYY-MM-DD", nil)
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "end_date must be YYYY-MM-DD", nil)
		return
	}

	output, err := h.generateUC.Execute(ctx, appschedule.GenerateScheduleInput{
		TeamID:         teamID.String(),
		StartDate:      startDate,
		EndDate:        endDate,
		Seed:           req.Seed,
		Aggressiveness: req.Aggressiveness,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	assignments := make([]AssignmentResponse, 0, len(output.Assignments))
	for _, a := range output.Assignments {
		assignments = append(assignments, assignmentToResponse(a))
	}
	warnings := make([]WarningResponse, 0, len(output.Warnings))
	for _, wrn := range output.Warnings {
		warnings = append(warnings, warningToResponse(wrn))
	}

	RespondCreated(w, map[string]interface{}{
		"schedule_id": output.ScheduleID,
		"assignments": assignments,
		"warnings":    warnings,
	})
}

// RecomputeLedgerRequest is the request body for POST /api/v1/ledger/recompute
type RecomputeLedgerRequest struct {
	AsOf string `json:"as_of"`
}

// RecomputeLedger handles POST /api/v1/ledger/recompute
func (h *ScheduleHandler) RecomputeLedger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	var req RecomputeLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid request body", nil)
		return
	}

	asOf := time.Now()
	if req.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "as_of must be YYYY-MM-DD", nil)
			return
		}
		asOf = parsed
	}

	output, err := h.recomputeLedgerUC.Execute(ctx, appschedule.RecomputeLedgerInput{TeamID: teamID.String(), AsOf: asOf})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, output.Rows)
}

// ListAuditEntries handles GET /api/v1/schedules/{schedule_id}/audit
func (h *ScheduleHandler) ListAuditEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID, ok := GetTeamID(ctx)
	if !ok {
		writeError(w, http.StatusForbidden, "ERR_FORBIDDEN", "team ID is required", nil)
		return
	}

	scheduleIDStr := chi.URLParam(r, "schedule_id")
	if scheduleIDStr == "" {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "schedule_id is required", nil)
		return
	}
	if _, err := common.ParseScheduleID(scheduleIDStr); err != nil {
		writeError(w, http.StatusBadRequest, "ERR_INVALID_REQUEST", "invalid schedule_id format", nil)
		return
	}

	entries, err := h.listAuditEntriesUC.Execute(ctx, appschedule.ListAuditEntriesInput{
		TeamID:     teamID.String(),
		ScheduleID: scheduleIDStr,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, entries)
}
