package routes

import (
	"campusmatch_server/controllers"
	"campusmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat-related operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, iceBreaker services.IceBreakerProvider) {
	controller := controllers.NewChatController(chatService, iceBreaker)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/session", controller.HandleGetSession).Methods("GET")
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/reveal", controller.HandleReveal).Methods("POST")
	chatRouter.HandleFunc("/icebreaker", controller.HandleIceBreaker).Methods("POST")
}
