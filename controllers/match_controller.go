package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"campusmatch_server/models"
	"campusmatch_server/services"
	"campusmatch_server/utils"

	"github.com/gorilla/mux"
)

// MatchController serves the swipe queue and the recorded matches.
type MatchController struct {
	MatchService *services.MatchService
	Catalog      *services.CatalogService
}

// NewMatchController initializes the match controller
func NewMatchController(matchService *services.MatchService, catalog *services.CatalogService) *MatchController {
	return &MatchController{MatchService: matchService, Catalog: catalog}
}

// HandleGetQueue - builds the swipe queue for the user in the request body
func (c *MatchController) HandleGetQueue(w http.ResponseWriter, r *http.Request) {
	var user models.Profile
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if err := utils.ValidateProfile(user); err != nil {
		log.Printf("❌ Rejected queue request: %v", err)
		http.Error(w, `{"error": "Invalid user profile"}`, http.StatusBadRequest)
		return
	}

	queue := services.BuildQueue(user, c.Catalog.Candidates(), c.MatchService.GetMatches(), nil)
	respondJSON(w, http.StatusOK, queue)
}

// HandleGetMatches - lists the recorded matches
func (c *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, c.MatchService.GetMatches())
}

// HandleRemoveMatch - unmatch: deletes the match and its session together
func (c *MatchController) HandleRemoveMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	if matchID == "" {
		http.Error(w, `{"error": "matchId is required"}`, http.StatusBadRequest)
		return
	}

	err := c.MatchService.RemoveMatch(r.Context(), matchID)
	if err != nil && !services.IsPersistenceError(err) {
		log.Printf("❌ Failed to remove match %s: %v", matchID, err)
		http.Error(w, `{"error": "Failed to remove match"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"status": "success"}
	if services.IsPersistenceError(err) {
		response["warning"] = "changes may not be saved"
	}
	respondJSON(w, http.StatusOK, response)
}
