package controllers

import (
	"encoding/json"
	"net/http"

	"unalon_server/models"
	"unalon_server/services"
	"unalon_server/utils"

	"github.com/go-playground/validator/v10"
)

// AuthController handles registration, login and session introspection.
type AuthController struct {
	Users    *services.UserService
	Sessions *services.SessionService
	validate *validator.Validate
}

// NewAuthController initializes the auth controller
func NewAuthController(users *services.UserService, sessions *services.SessionService) *AuthController {
	return &AuthController{Users: users, Sessions: sessions, validate: validator.New()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin - Resolve credentials, open a session and set the cookie
func (c *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request body")
		return
	}
	if err := c.validate.Struct(payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request data")
		return
	}

	user, err := c.Users.Login(r.Context(), payload.Email)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	session := c.Sessions.Create(user.ID)
	utils.SetSessionCookie(w, session.Token)
	utils.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// HandleRegister - Create an account and log the new user straight in
func (c *AuthController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var payload models.UserInsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request body")
		return
	}
	if err := c.validate.Struct(payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request data")
		return
	}

	user, err := c.Users.Register(r.Context(), payload)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	session := c.Sessions.Create(user.ID)
	utils.SetSessionCookie(w, session.Token)
	utils.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// HandleLogout - Destroy the session and clear the cookie
func (c *AuthController) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(utils.SessionCookieName); err == nil {
		c.Sessions.Destroy(cookie.Value)
	}
	utils.ClearSessionCookie(w)
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// HandleMe - Return the logged-in user's profile
func (c *AuthController) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.UserIDFromContext(r.Context())

	user, err := c.Users.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
