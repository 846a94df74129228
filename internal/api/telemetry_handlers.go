package api

import (
	"encoding/json"
	"net/http"
	"time"

	"skyward-va/horizon/internal/auth"
	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/dtos"
)

// RecordTelemetry handles POST /api/v1/telemetry
func (h *Handlers) RecordTelemetry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.TelemetryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Registry.RecordTelemetry(r.Context(), claims.PilotID(), &req); err != nil {
			respondServiceError(w, initTime, err, "Failed to record telemetry")
			return
		}

		common.RespondSuccess(w, initTime, "", nil, http.StatusAccepted)
	}
}

// GetLiveMap handles GET /api/v1/map/live
func (h *Handlers) GetLiveMap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flights, err := h.deps.Services.Registry.LiveFlights(r.Context())
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch live flights", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", flights)
	}
}
