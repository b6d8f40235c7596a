package models

import "time"

// ActivityRequest is a user's application to join an activity. Status moves
// pending -> accepted or pending -> rejected and is terminal once resolved.
type ActivityRequest struct {
	ID         string    `json:"id"`
	ActivityID string    `json:"activityId"`
	UserID     string    `json:"userId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ActivityRequestDetail pairs a request with its requesting user, for the
// host's review list.
type ActivityRequestDetail struct {
	ActivityRequest
	User *User `json:"user"`
}

// RequestDecision is the host's verdict on a pending request.
type RequestDecision struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
}
