package routes

import (
	"campusmatch_server/controllers"
	"campusmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up routes for notifications under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, service *services.NotificationService) {
	controller := controllers.NewNotificationController(service)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.HandleFunc("", controller.HandleGetNotifications).Methods("GET")
	notificationRouter.HandleFunc("/mark-read", controller.HandleMarkAllRead).Methods("POST")
}
