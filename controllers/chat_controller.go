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

// ChatController handles conversations and message threads.
type ChatController struct {
	Chat     *services.ChatService
	validate *validator.Validate
}

// NewChatController initializes the chat controller
func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat, validate: validator.New()}
}

// HandleListConversations - Per-counterpart summaries, newest first
func (c *ChatController) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.UserIDFromContext(r.Context())

	conversations, err := c.Chat.ListConversations(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, conversations)
}

// HandleGetMessages - Fetch the thread with one user; marks their messages
// read as a side effect. The returned messages show their pre-fetch read
// state, so an unread badge clears on the next poll rather than this one.
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.UserIDFromContext(r.Context())
	otherUserID := mux.Vars(r)["userId"]

	messages, err := c.Chat.GetThread(r.Context(), userID, otherUserID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	if err := c.Chat.MarkThreadRead(r.Context(), userID, otherUserID); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, messages)
}

// HandleSendMessage - Send a message from the logged-in user
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.UserIDFromContext(r.Context())

	var payload models.MessageInsert
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request body")
		return
	}
	if err := c.validate.Struct(payload); err != nil {
		utils.JSONError(w, http.StatusBadRequest, services.KindValidation, "Invalid request data")
		return
	}

	message, err := c.Chat.SendMessage(r.Context(), userID, payload)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, message)
}
