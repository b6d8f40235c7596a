package services

import (
	"context"
	"log"
	"strings"

	"unalon_server/models"
)

// UserService handles registration, login and profile lookups.
type UserService struct {
	Store *MemoryStore
}

// Register creates a new account. Email and username must be unused;
// unalonScore and createdAt are server-assigned.
func (s *UserService) Register(ctx context.Context, insert models.UserInsert) (models.User, error) {
	insert.Email = strings.ToLower(strings.TrimSpace(insert.Email))
	insert.Username = strings.TrimSpace(insert.Username)

	user, err := s.Store.CreateUser(insert)
	if err != nil {
		log.Printf("⚠️ Registration rejected for %s: %v", insert.Email, err)
		return models.User{}, err
	}

	log.Printf("✅ Registered user %s (%s)", user.Username, user.ID)
	return user, nil
}

// Login resolves credentials to a user. Authentication is email lookup
// only; the password is accepted for wire compatibility and not verified.
func (s *UserService) Login(ctx context.Context, email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, ok := s.Store.GetUserByEmail(email)
	if !ok {
		log.Printf("⚠️ Login failed for %s", email)
		return models.User{}, NewError(KindUnauthorized, "Invalid credentials")
	}

	log.Printf("✅ Login: %s (%s)", user.Username, user.ID)
	return user, nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, ok := s.Store.GetUser(id)
	if !ok {
		return models.User{}, NewError(KindNotFound, "User not found")
	}
	return user, nil
}
