package controllers

import (
	"net/http"

	"campusmatch_server/services"
)

// NotificationController serves the notification feed.
type NotificationController struct {
	NotificationService *services.NotificationService
}

// NewNotificationController initializes the notification controller
func NewNotificationController(service *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: service}
}

// HandleGetNotifications - lists notifications, newest insertion first
func (c *NotificationController) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, c.NotificationService.GetNotifications())
}

// HandleMarkAllRead - flags every notification as read
func (c *NotificationController) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	err := c.NotificationService.MarkAllRead(r.Context())
	if err != nil && !services.IsPersistenceError(err) {
		http.Error(w, `{"error": "Failed to mark notifications read"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"status": "success"}
	if services.IsPersistenceError(err) {
		response["warning"] = "changes may not be saved"
	}
	respondJSON(w, http.StatusOK, response)
}
