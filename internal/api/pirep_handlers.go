package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward-va/horizon/internal/auth"
	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/dtos"
)

// SubmitPirep handles POST /api/v1/pireps
func (h *Handlers) SubmitPirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.SubmitReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		report, err := h.deps.Services.Intake.SubmitReport(r.Context(), claims.PilotID(), &req)
		if err != nil {
			respondServiceError(w, initTime, err, "Failed to submit report")
			return
		}

		common.RespondSuccess(w, initTime, "Report submitted for review", report, http.StatusCreated)
	}
}

// GetPirep handles GET /api/v1/pireps/{report_id}
func (h *Handlers) GetPirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		reportID := chi.URLParam(r, "report_id")
		report, err := h.deps.Repo.Reports.GetByID(r.Context(), reportID)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch report", http.StatusInternalServerError)
			return
		}
		if report == nil {
			common.RespondError(w, initTime, nil, constants.MsgReportNotFound, http.StatusNotFound)
			return
		}

		// Pilots may only see their own reports; staff see everything.
		claims := auth.GetUserClaims(r.Context())
		if claims == nil || (!claims.IsStaff() && claims.PilotID() != report.PilotID) {
			common.RespondError(w, initTime, nil, constants.MsgReportNotFound, http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", report)
	}
}

// ListMyPireps handles GET /api/v1/pireps
func (h *Handlers) ListMyPireps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		reports, err := h.deps.Services.Pilots.RecentReports(r.Context(), claims.PilotID(), 20)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch reports", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", reports)
	}
}

// ListPendingPireps handles GET /api/v1/pireps/pending (staff)
func (h *Handlers) ListPendingPireps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		reports, err := h.deps.Repo.Reports.ListPending(r.Context())
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch pending reports", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", reports)
	}
}

// DecidePirep handles POST /api/v1/pireps/{report_id}/decide (staff)
func (h *Handlers) DecidePirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.DecideReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		var decision string
		switch req.Decision {
		case "approve", string(constants.ReportApproved):
			decision = string(constants.ReportApproved)
		case "reject", string(constants.ReportRejected):
			decision = string(constants.ReportRejected)
		default:
			common.RespondError(w, initTime, nil, constants.MsgInvalidDecision, http.StatusBadRequest)
			return
		}

		reportID := chi.URLParam(r, "report_id")
		summary, err := h.deps.Services.Approval.Decide(r.Context(), reportID, claims.PilotID(), decision)
		if err != nil {
			respondServiceError(w, initTime, err, constants.MsgReportDecided)
			return
		}

		common.RespondSuccess(w, initTime, "Decision applied", summary)
	}
}

// ReopenPirep handles POST /api/v1/pireps/{report_id}/reopen (staff)
func (h *Handlers) ReopenPirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		reportID := chi.URLParam(r, "report_id")
		if err := h.deps.Services.Approval.Reopen(r.Context(), reportID); err != nil {
			respondServiceError(w, initTime, err, "Failed to reopen report")
			return
		}

		common.RespondSuccess(w, initTime, "Report reopened for review", nil)
	}
}

// RedrivePirep handles POST /api/v1/pireps/{report_id}/propagate (admin)
func (h *Handlers) RedrivePirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		reportID := chi.URLParam(r, "report_id")
		summary, err := h.deps.Services.Approval.Redrive(r.Context(), reportID)
		if err != nil {
			respondServiceError(w, initTime, err, "Failed to re-drive propagation")
			return
		}

		common.RespondSuccess(w, initTime, "Propagation re-driven", summary)
	}
}
