package models

import "time"

// Activity is a hostable, joinable event with a participant capacity.
// The host is implicitly attending and is never listed in ParticipantIDs;
// CurrentParticipants always equals len(ParticipantIDs).
type Activity struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	HostID              string    `json:"hostId"`
	Location            string    `json:"location"`
	Datetime            time.Time `json:"datetime"`
	Duration            string    `json:"duration"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Vibes               []string  `json:"vibes"`
	ParticipantIDs      []string  `json:"participantIds"`
	Image               string    `json:"image,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ActivityInsert carries the client-settable fields at creation. The host
// comes from the session, never from the body.
type ActivityInsert struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	Location        string    `json:"location" validate:"required"`
	Datetime        time.Time `json:"datetime" validate:"required"`
	Duration        string    `json:"duration" validate:"required"`
	MaxParticipants int       `json:"maxParticipants" validate:"required,min=1"`
	Vibes           []string  `json:"vibes,omitempty"`
	Image           string    `json:"image,omitempty"`
}

// ActivityPatch enumerates the mutable fields of a stored activity. A nil
// field is left unchanged. Nothing else on an activity may be rewritten
// after creation.
type ActivityPatch struct {
	CurrentParticipants *int
	ParticipantIDs      *[]string
}

// ActivityDetail is an activity annotated for a viewer: resolved host,
// resolved participants, and whether the viewer has asked to join.
type ActivityDetail struct {
	Activity
	Host          *User  `json:"host"`
	Participants  []User `json:"participants,omitempty"`
	UserRequested bool   `json:"userRequested"`
}

// MyPlans partitions a user's hosted and joined activities around now.
type MyPlans struct {
	Upcoming []ActivityDetail `json:"upcoming"`
	Past     []ActivityDetail `json:"past"`
}
