package routes

import (
	"unalon_server/controllers"
	"unalon_server/services"
	"unalon_server/utils"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up login, registration and session routes under /api
func RegisterAuthRoutes(r *mux.Router, users *services.UserService, sessions *services.SessionService) {
	controller := controllers.NewAuthController(users, sessions)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	api.HandleFunc("/register", controller.HandleRegister).Methods("POST")
	api.HandleFunc("/logout", utils.RequireSession(sessions, controller.HandleLogout)).Methods("POST")
	api.HandleFunc("/me", utils.RequireSession(sessions, controller.HandleMe)).Methods("GET")
}
