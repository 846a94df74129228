package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward-va/horizon/internal/auth"
	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
)

// GetActivityProgress handles GET /api/v1/activities/{activity_id}/progress
func (h *Handlers) GetActivityProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		activityID := chi.URLParam(r, "activity_id")
		snapshot, err := h.deps.Services.Activities.Snapshot(r.Context(), claims.PilotID(), activityID)
		if err != nil {
			respondServiceError(w, initTime, err, constants.MsgActivityNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", snapshot)
	}
}

// StartTour handles POST /api/v1/tours/{tour_id}/start
func (h *Handlers) StartTour() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		tourID := chi.URLParam(r, "tour_id")
		progress, err := h.deps.Services.Tours.StartTour(r.Context(), claims.PilotID(), tourID, time.Now().UTC())
		if err != nil {
			respondServiceError(w, initTime, err, constants.MsgTourNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Tour started", progress, http.StatusCreated)
	}
}

// GetTourProgress handles GET /api/v1/tours/{tour_id}/progress
func (h *Handlers) GetTourProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		tourID := chi.URLParam(r, "tour_id")
		snapshot, err := h.deps.Services.Tours.Snapshot(r.Context(), claims.PilotID(), tourID)
		if err != nil {
			respondServiceError(w, initTime, err, constants.MsgTourNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", snapshot)
	}
}
