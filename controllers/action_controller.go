package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"campusmatch_server/models"
	"campusmatch_server/services"
	"campusmatch_server/utils"
)

// ActionController handles swipe actions and the demo reset.
type ActionController struct {
	MatchService *services.MatchService
}

// NewActionController initializes the action controller
func NewActionController(matchService *services.MatchService) *ActionController {
	return &ActionController{MatchService: matchService}
}

// HandleSwipe - processes a swipe on the current queue candidate
func (c *ActionController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Direction     string                `json:"direction"`
		CurrentUserID string                `json:"currentUserId"`
		Candidate     models.MatchCandidate `json:"candidate"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if request.CurrentUserID == "" {
		http.Error(w, `{"error": "currentUserId is required"}`, http.StatusBadRequest)
		return
	}
	if request.Direction != models.SwipeRight && request.Direction != models.SwipeLeft {
		http.Error(w, `{"error": "direction must be 'right' or 'left'"}`, http.StatusBadRequest)
		return
	}
	if err := utils.ValidateProfile(request.Candidate.Profile); err != nil {
		log.Printf("❌ Rejected swipe candidate: %v", err)
		http.Error(w, `{"error": "Invalid candidate profile"}`, http.StatusBadRequest)
		return
	}

	// A left swipe records nothing: the candidate simply is not matched
	if request.Direction == models.SwipeLeft {
		respondJSON(w, http.StatusOK, map[string]interface{}{"status": "success", "matched": false})
		return
	}

	created, err := c.MatchService.AddMatch(r.Context(), request.Candidate, request.CurrentUserID)
	if err != nil && !services.IsPersistenceError(err) {
		log.Printf("❌ Failed to add match: %v", err)
		http.Error(w, `{"error": "Failed to add match"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"status": "success", "matched": created}
	if services.IsPersistenceError(err) {
		response["warning"] = "changes may not be saved"
	}
	respondJSON(w, http.StatusOK, response)
}

// HandleReset - restores the fresh-install demo state
func (c *ActionController) HandleReset(w http.ResponseWriter, r *http.Request) {
	err := c.MatchService.Store.Reset(r.Context())
	if err != nil && !services.IsPersistenceError(err) {
		http.Error(w, `{"error": "Failed to reset store"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"status": "success"}
	if services.IsPersistenceError(err) {
		response["warning"] = "changes may not be saved"
	}
	respondJSON(w, http.StatusOK, response)
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
