package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"campusmatch_server/models"
	"campusmatch_server/services"
)

// ChatController handles chat session reads, message sends and reveals.
type ChatController struct {
	ChatService *services.ChatService
	IceBreaker  services.IceBreakerProvider
}

// NewChatController initializes the chat controller
func NewChatController(chatService *services.ChatService, iceBreaker services.IceBreakerProvider) *ChatController {
	return &ChatController{ChatService: chatService, IceBreaker: iceBreaker}
}

// HandleGetSession - fetch the chat session for a matchId
func (c *ChatController) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("matchId")
	if matchID == "" {
		http.Error(w, `{"error": "matchId is required"}`, http.StatusBadRequest)
		return
	}

	session, err := c.ChatService.GetSession(matchID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, `{"error": "Session not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to fetch session"}`, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// HandleSendMessage - append a message to a session
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string `json:"matchId"`
		ID       string `json:"id,omitempty"`
		SenderID string `json:"senderId"`
		Text     string `json:"text"`
		IsSystem bool   `json:"isSystem,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.MatchID == "" || request.SenderID == "" {
		http.Error(w, `{"error": "Missing required fields: matchId or senderId"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.AddMessage(r.Context(), request.MatchID, models.Message{
		ID:       request.ID,
		SenderID: request.SenderID,
		Text:     request.Text,
		IsSystem: request.IsSystem,
	})
	if err != nil && !services.IsPersistenceError(err) {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			http.Error(w, `{"error": "Session not found"}`, http.StatusNotFound)
		case errors.Is(err, services.ErrDuplicateMessage):
			http.Error(w, `{"error": "Duplicate message id"}`, http.StatusConflict)
		case errors.Is(err, services.ErrEmptyMessage):
			http.Error(w, `{"error": "Message text cannot be empty"}`, http.StatusBadRequest)
		default:
			log.Printf("❌ Failed to send message: %v", err)
			http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		}
		return
	}

	response := map[string]interface{}{"status": "success", "message": message}
	if services.IsPersistenceError(err) {
		response["warning"] = "changes may not be saved"
	}
	respondJSON(w, http.StatusOK, response)
}

// HandleReveal - flip a session's reveal flag
func (c *ChatController) HandleReveal(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string `json:"matchId"`
		Revealed bool   `json:"revealed"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.MatchID == "" {
		http.Error(w, `{"error": "matchId is required"}`, http.StatusBadRequest)
		return
	}

	err := c.ChatService.SetRevealed(r.Context(), request.MatchID, request.Revealed)
	if err != nil && !services.IsPersistenceError(err) {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, `{"error": "Session not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to update session"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"status": "success"}
	if services.IsPersistenceError(err) {
		response["warning"] = "changes may not be saved"
	}
	respondJSON(w, http.StatusOK, response)
}

// HandleIceBreaker - suggest a conversation opener for a pair
func (c *ChatController) HandleIceBreaker(w http.ResponseWriter, r *http.Request) {
	var request struct {
		User      models.Profile        `json:"user"`
		Candidate models.MatchCandidate `json:"candidate"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	opener, err := c.IceBreaker.SuggestOpener(r.Context(), request.User, request.Candidate)
	if err != nil {
		log.Printf("❌ Ice-breaker provider unavailable: %v", err)
		http.Error(w, `{"error": "Ice-breaker unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"opener": opener})
}
