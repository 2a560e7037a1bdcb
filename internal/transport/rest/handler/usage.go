package handler

import (
	"encoding/json"
	"net/http"

	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/service"
	"whatshouldweeat/internal/transport/rest/middleware"
)

// UsageHandler serves the usage counter endpoints
type UsageHandler struct {
	usageSvc *service.UsageService
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(usageSvc *service.UsageService) *UsageHandler {
	return &UsageHandler{usageSvc: usageSvc}
}

// Get handles GET /v1/usage
func (h *UsageHandler) Get(w http.ResponseWriter, r *http.Request) {
	usage, err := h.usageSvc.Usage(r.Context(), middleware.ClientID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, usage)
}

// TrackRequest is the request body for client-reported sessions, used
// by clients that ran the quiz locally against the fallback pool
type TrackRequest struct {
	SessionData *model.SessionRecord `json:"sessionData"`
}

// Track handles POST /v1/usage/track
func (h *UsageHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionData == nil {
		writeError(w, http.StatusBadRequest, "session data is required")
		return
	}

	req.SessionData.UserAgent = r.UserAgent()
	if err := h.usageSvc.TrackCompletion(r.Context(), middleware.ClientID(r), req.SessionData); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "tracked"})
}
