package routes

import (
	"unalon_server/controllers"
	"unalon_server/services"
	"unalon_server/utils"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up conversation and messaging routes under /api
func RegisterChatRoutes(r *mux.Router, chat *services.ChatService, sessions *services.SessionService) {
	controller := controllers.NewChatController(chat)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/conversations", utils.RequireSession(sessions, controller.HandleListConversations)).Methods("GET")
	api.HandleFunc("/messages", utils.RequireSession(sessions, controller.HandleSendMessage)).Methods("POST")
	api.HandleFunc("/messages/{userId}", utils.RequireSession(sessions, controller.HandleGetMessages)).Methods("GET")
}
