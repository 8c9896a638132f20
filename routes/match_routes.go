package routes

import (
	"campusmatch_server/controllers"
	"campusmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for queue and match operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, catalog *services.CatalogService) {
	controller := controllers.NewMatchController(matchService, catalog)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("/queue", controller.HandleGetQueue).Methods("POST")
	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.HandleRemoveMatch).Methods("DELETE")
}
