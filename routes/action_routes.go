package routes

import (
	"campusmatch_server/controllers"
	"campusmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for swipe actions under /api/actions
func RegisterActionRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewActionController(matchService)

	actionRouter := r.PathPrefix("/api/actions").Subrouter()
	actionRouter.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
	actionRouter.HandleFunc("/reset", controller.HandleReset).Methods("POST")
}
