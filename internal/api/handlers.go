package api

import (
	"errors"
	"net/http"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// respondServiceError maps the service error taxonomy onto HTTP codes.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error, fallback string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		common.RespondError(w, initTime, err, fallback, http.StatusBadRequest)
	case errors.Is(err, services.ErrNotFound):
		common.RespondError(w, initTime, err, fallback, http.StatusNotFound)
	case errors.Is(err, services.ErrConflict):
		common.RespondError(w, initTime, err, fallback, http.StatusConflict)
	case errors.Is(err, services.ErrInsufficientFunds):
		common.RespondError(w, initTime, err, fallback, http.StatusPaymentRequired)
	default:
		common.RespondError(w, initTime, nil, fallback, http.StatusInternalServerError)
	}
}
