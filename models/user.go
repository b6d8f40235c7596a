package models

import "time"

// User is a registered member of the platform. UnalonScore and CreatedAt are
// server-assigned and never accepted from a client.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Age           *int      `json:"age,omitempty"`
	Location      string    `json:"location,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	UnalonScore   int       `json:"unalonScore"`
	Interests     []string  `json:"interests"`
	FavoriteQuote string    `json:"favoriteQuote,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserInsert carries the client-settable fields at registration.
type UserInsert struct {
	Username      string   `json:"username" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Name          string   `json:"name" validate:"required"`
	Age           *int     `json:"age,omitempty" validate:"omitempty,gt=0"`
	Location      string   `json:"location,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
	Interests     []string `json:"interests,omitempty"`
	FavoriteQuote string   `json:"favoriteQuote,omitempty"`
}
