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

// CreateBid handles POST /api/v1/bids
func (h *Handlers) CreateBid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.CreateBidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		bid, err := h.deps.Services.Bids.Create(r.Context(), claims.PilotID(), &req)
		if err != nil {
			respondServiceError(w, initTime, err, "Failed to create bid")
			return
		}

		common.RespondSuccess(w, initTime, "Bid created", bid, http.StatusCreated)
	}
}

// ListBids handles GET /api/v1/bids
func (h *Handlers) ListBids() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		bids, err := h.deps.Services.Bids.List(r.Context(), claims.PilotID())
		if err != nil {
			common.RespondError(w, initTime, nil, "Failed to fetch bids", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", bids)
	}
}

// DeleteBid handles DELETE /api/v1/bids/{bid_id}
func (h *Handlers) DeleteBid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		bidID := chi.URLParam(r, "bid_id")
		if err := h.deps.Services.Bids.Delete(r.Context(), claims.PilotID(), bidID); err != nil {
			respondServiceError(w, initTime, err, constants.MsgBidNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Bid deleted", nil)
	}
}
