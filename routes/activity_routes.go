package routes

import (
	"unalon_server/controllers"
	"unalon_server/services"
	"unalon_server/utils"

	"github.com/gorilla/mux"
)

// RegisterActivityRoutes sets up activity and join-request routes under /api
func RegisterActivityRoutes(r *mux.Router, activities *services.ActivityService, sessions *services.SessionService) {
	controller := controllers.NewActivityController(activities)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/activities", utils.RequireSession(sessions, controller.HandleListActivities)).Methods("GET")
	api.HandleFunc("/activities", utils.RequireSession(sessions, controller.HandleCreateActivity)).Methods("POST")
	api.HandleFunc("/activities/{id}", utils.RequireSession(sessions, controller.HandleGetActivity)).Methods("GET")
	api.HandleFunc("/activities/{id}/request", utils.RequireSession(sessions, controller.HandleRequestToJoin)).Methods("POST")
	api.HandleFunc("/activities/{id}/requests", utils.RequireSession(sessions, controller.HandleListRequests)).Methods("GET")
	api.HandleFunc("/requests/{id}/respond", utils.RequireSession(sessions, controller.HandleRespondToRequest)).Methods("POST")
	api.HandleFunc("/my-plans", utils.RequireSession(sessions, controller.HandleMyPlans)).Methods("GET")
}
