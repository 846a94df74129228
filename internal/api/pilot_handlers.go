package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward-va/horizon/internal/auth"
	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/dtos"
)

// GetPilotStats handles GET /api/v1/pilots/{pilot_id}/stats
func (h *Handlers) GetPilotStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilotID := chi.URLParam(r, "pilot_id")
		stats, err := h.deps.Services.Pilots.Stats(r.Context(), pilotID)
		if err != nil {
			respondServiceError(w, initTime, err, constants.MsgPilotNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", stats)
	}
}

// GetPilotAwards handles GET /api/v1/pilots/{pilot_id}/awards
func (h *Handlers) GetPilotAwards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilotID := chi.URLParam(r, "pilot_id")
		awards, err := h.deps.Services.Pilots.Awards(r.Context(), pilotID)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch awards", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", awards)
	}
}

// GetLeaderboard handles GET /api/v1/leaderboard
func (h *Handlers) GetLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		entries, err := h.deps.Services.Pilots.Leaderboard(r.Context(), limit)
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch leaderboard", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", entries)
	}
}

// Jumpseat handles POST /api/v1/jumpseat
func (h *Handlers) Jumpseat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.JumpseatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		receipt, err := h.deps.Services.Pilots.Jumpseat(r.Context(), claims.PilotID(), req.DestinationICAO)
		if err != nil {
			respondServiceError(w, initTime, err, "Jumpseat failed")
			return
		}

		common.RespondSuccess(w, initTime, "Relocated", receipt)
	}
}
