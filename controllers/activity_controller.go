package controllers

import (
	"encoding/json"
	"net/http"

	"unalon_server/models"
	"unalon_server/services"
	"unalon_server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// ActivityController handles the activity lifecycle and the join-request
// workflow.
type ActivityController struct {
	Activities *services.ActivityService
	validate   *validator.Validate
}

// NewActivityController initializes the activity controller
func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{Activities: activities, validate: validator.New()}
}

// HandleListActivities - All activities, datetime-ascending, annotated for
// the viewer
func (c *ActivityController) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := utils.UserIDFromContext(r.Context())

	activities, err := c.Activities.ListActivities(r.Context(), viewerID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, activities)
}

// HandleGetActivity - One activity with host, participants and request flag
func (c *ActivityController) HandleGetActivity(w http.ResponseWriter, r *http.Request) {
	viewerID, _ := utils.UserIDFromContext(r.Context())
	activityID := mux.Vars(r)["id"]

	activity, err := c.Activities.GetActivity(r.Context(), activityID, viewerID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, activity)
}

// HandleCreateActivity - Create an activity hosted by the logged-in user
func (c *ActivityController) HandleCreateActivity(w http.ResponseWriter, r *http.Request) {
	hostID, _ := utils.UserIDFromContext(r.Context())

	var payload models.ActivityInsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request body")
		return
	}
	if err := c.validate.Struct(payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request data")
		return
	}

	activity, err := c.Activities.CreateActivity(r.Context(), hostID, payload)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, activity)
}

// HandleRequestToJoin - File a pending join request for the logged-in user
func (c *ActivityController) HandleRequestToJoin(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.UserIDFromContext(r.Context())
	activityID := mux.Vars(r)["id"]

	request, err := c.Activities.RequestToJoin(r.Context(), activityID, userID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, request)
}

// HandleListRequests - Host-only review list of an activity's join requests
func (c *ActivityController) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	actorID, _ := utils.UserIDFromContext(r.Context())
	activityID := mux.Vars(r)["id"]

	requests, err := c.Activities.ListRequests(r.Context(), activityID, actorID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, requests)
}

// HandleRespondToRequest - Host accepts or rejects a pending request
func (c *ActivityController) HandleRespondToRequest(w http.ResponseWriter, r *http.Request) {
	actorID, _ := utils.UserIDFromContext(r.Context())
	requestID := mux.Vars(r)["id"]

	var payload models.RequestDecision
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request body")
		return
	}
	if err := c.validate.Struct(payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Decision must be accepted or rejected")
		return
	}

	request, err := c.Activities.ResolveRequest(r.Context(), requestID, payload.Decision, actorID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, request)
}

// HandleMyPlans - The viewer's hosted and joined activities, split around now
func (c *ActivityController) HandleMyPlans(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.UserIDFromContext(r.Context())

	plans, err := c.Activities.ListMyPlans(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, plans)
}
