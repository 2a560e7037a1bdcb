package handler

import (
	"encoding/json"
	"net/http"

	"whatshouldweeat/internal/model"
	"whatshouldweeat/internal/service"
)

// RestaurantHandler serves the venue search endpoint
type RestaurantHandler struct {
	placeSvc *service.PlaceService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(placeSvc *service.PlaceService) *RestaurantHandler {
	return &RestaurantHandler{placeSvc: placeSvc}
}

// SearchRequest is the request body for venue search
type SearchRequest struct {
	CuisineType string          `json:"cuisineType"`
	Location    *model.Location `json:"location"`
	MaxPrice    int             `json:"maxPrice,omitempty"`
}

// Search handles POST /v1/restaurants/search
func (h *RestaurantHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CuisineType == "" || req.Location == nil {
		writeError(w, http.StatusBadRequest, "cuisine type and location are required")
		return
	}

	venues, err := h.placeSvc.FindVenues(r.Context(), req.CuisineType, *req.Location, req.MaxPrice)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to find restaurants")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    venues,
	})
}
