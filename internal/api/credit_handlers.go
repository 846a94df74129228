package api

import (
	"encoding/json"
	"net/http"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/dtos"
)

// AdjustCredits handles POST /api/v1/credits/adjust (admin)
func (h *Handlers) AdjustCredits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AdjustCreditsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}
		if req.PilotID == "" || req.Reason == "" {
			common.RespondError(w, initTime, nil, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		balance, err := h.deps.Services.Credits.Adjust(r.Context(), req.PilotID, req.Delta, req.Reason)
		if err != nil {
			respondServiceError(w, initTime, err, constants.MsgInsufficientFunds)
			return
		}

		common.RespondSuccess(w, initTime, "Balance adjusted", map[string]int64{"new_balance": balance})
	}
}
