package models

import "time"

// Message is a directed message between two users. Timestamp is
// server-assigned; IsRead flips when the receiver fetches the thread.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"isRead"`
}

// MessageInsert carries the client-settable fields of a new message. The
// sender comes from the session.
type MessageInsert struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// Conversation summarizes the message history with one counterpart.
type Conversation struct {
	User        User    `json:"user"`
	LastMessage Message `json:"lastMessage"`
	UnreadCount int     `json:"unreadCount"`
}
