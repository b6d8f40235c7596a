package services

import (
	"sort"
	"sync"
	"time"

	"unalon_server/models"

	"github.com/google/uuid"
)

// MemoryStore is the single source of truth for users, activities, join
// requests and messages. Services hold a pointer to it the way they would
// hold a database client; entity memory is never shared with callers —
// every read hands out a value copy with slice fields cloned, and writes go
// through explicit create/update methods (no silent upserts).
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[string]models.User
	activities map[string]models.Activity
	requests   map[string]models.ActivityRequest
	messages   map[string]models.Message
	// messageOrder preserves insertion order so threads and conversation
	// summaries stay chronological even when two messages land on the same
	// clock tick.
	messageOrder []string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]models.User),
		activities: make(map[string]models.Activity),
		requests:   make(map[string]models.ActivityRequest),
		messages:   make(map[string]models.Message),
	}
}

// ---------- Users ----------

// CreateUser inserts a new user, assigning id, score and creation time.
// Email and username must be unique across the store.
func (ms *MemoryStore) CreateUser(insert models.UserInsert) (models.User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, u := range ms.users {
		if u.Email == insert.Email {
			return models.User{}, NewError(KindConflict, "User already exists")
		}
		if u.Username == insert.Username {
			return models.User{}, NewError(KindConflict, "Username is taken")
		}
	}

	user := models.User{
		ID:            uuid.New().String(),
		Username:      insert.Username,
		Email:         insert.Email,
		Name:          insert.Name,
		Age:           insert.Age,
		Location:      insert.Location,
		Avatar:        insert.Avatar,
		UnalonScore:   0,
		Interests:     cloneStrings(insert.Interests),
		FavoriteQuote: insert.FavoriteQuote,
		CreatedAt:     time.Now(),
	}
	if user.Interests == nil {
		user.Interests = []string{}
	}

	ms.users[user.ID] = user
	return copyUser(user), nil
}

// GetUser looks a user up by id.
func (ms *MemoryStore) GetUser(id string) (models.User, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	user, ok := ms.users[id]
	if !ok {
		return models.User{}, false
	}
	return copyUser(user), true
}

// GetUserByEmail looks a user up by their unique email.
func (ms *MemoryStore) GetUserByEmail(email string) (models.User, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	for _, u := range ms.users {
		if u.Email == email {
			return copyUser(u), true
		}
	}
	return models.User{}, false
}

// GetUsersByIDs resolves ids to users, preserving order and skipping any id
// that no longer resolves.
func (ms *MemoryStore) GetUsersByIDs(ids []string) []models.User {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := ms.users[id]; ok {
			users = append(users, copyUser(u))
		}
	}
	return users
}

// ---------- Activities ----------

// CreateActivity inserts a new activity for hostID with an empty participant
// list.
func (ms *MemoryStore) CreateActivity(hostID string, insert models.ActivityInsert) models.Activity {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	activity := models.Activity{
		ID:                  uuid.New().String(),
		Title:               insert.Title,
		Description:         insert.Description,
		HostID:              hostID,
		Location:            insert.Location,
		Datetime:            insert.Datetime,
		Duration:            insert.Duration,
		MaxParticipants:     insert.MaxParticipants,
		CurrentParticipants: 0,
		Vibes:               cloneStrings(insert.Vibes),
		ParticipantIDs:      []string{},
		Image:               insert.Image,
		CreatedAt:           time.Now(),
	}
	if activity.Vibes == nil {
		activity.Vibes = []string{}
	}

	ms.activities[activity.ID] = activity
	return copyActivity(activity)
}

// GetActivity looks an activity up by id.
func (ms *MemoryStore) GetActivity(id string) (models.Activity, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	activity, ok := ms.activities[id]
	if !ok {
		return models.Activity{}, false
	}
	return copyActivity(activity), true
}

// UpdateActivity applies a patch to an existing activity. Returns false if
// the id is unknown.
func (ms *MemoryStore) UpdateActivity(id string, patch models.ActivityPatch) (models.Activity, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	activity, ok := ms.activities[id]
	if !ok {
		return models.Activity{}, false
	}
	if patch.CurrentParticipants != nil {
		activity.CurrentParticipants = *patch.CurrentParticipants
	}
	if patch.ParticipantIDs != nil {
		activity.ParticipantIDs = cloneStrings(*patch.ParticipantIDs)
	}

	ms.activities[id] = activity
	return copyActivity(activity), true
}

// ListActivities returns all activities ordered by ascending datetime.
func (ms *MemoryStore) ListActivities() []models.Activity {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	activities := make([]models.Activity, 0, len(ms.activities))
	for _, a := range ms.activities {
		activities = append(activities, copyActivity(a))
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Datetime.Before(activities[j].Datetime)
	})
	return activities
}

// GetActivitiesByParticipant returns every activity the user hosts or has
// joined.
func (ms *MemoryStore) GetActivitiesByParticipant(userID string) []models.Activity {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var activities []models.Activity
	for _, a := range ms.activities {
		if a.HostID == userID || containsString(a.ParticipantIDs, userID) {
			activities = append(activities, copyActivity(a))
		}
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Datetime.Before(activities[j].Datetime)
	})
	return activities
}

// ---------- Activity requests ----------

// CreateActivityRequest inserts a new pending join request.
func (ms *MemoryStore) CreateActivityRequest(activityID, userID string) models.ActivityRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	request := models.ActivityRequest{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		UserID:     userID,
		Status:     models.RequestStatusPending,
		CreatedAt:  time.Now(),
	}
	ms.requests[request.ID] = request
	return request
}

// GetActivityRequest looks a request up by id.
func (ms *MemoryStore) GetActivityRequest(id string) (models.ActivityRequest, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	request, ok := ms.requests[id]
	return request, ok
}

// GetUserActivityRequest returns the request userID filed for activityID,
// if any.
func (ms *MemoryStore) GetUserActivityRequest(activityID, userID string) (models.ActivityRequest, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	for _, r := range ms.requests {
		if r.ActivityID == activityID && r.UserID == userID {
			return r, true
		}
	}
	return models.ActivityRequest{}, false
}

// GetActivityRequests returns all requests for an activity, oldest first.
func (ms *MemoryStore) GetActivityRequests(activityID string) []models.ActivityRequest {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var requests []models.ActivityRequest
	for _, r := range ms.requests {
		if r.ActivityID == activityID {
			requests = append(requests, r)
		}
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests
}

// UpdateActivityRequestStatus rewrites a request's status. Returns false if
// the id is unknown.
func (ms *MemoryStore) UpdateActivityRequestStatus(id, status string) (models.ActivityRequest, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	request, ok := ms.requests[id]
	if !ok {
		return models.ActivityRequest{}, false
	}
	request.Status = status
	ms.requests[id] = request
	return request, true
}

// ---------- Messages ----------

// CreateMessage inserts a new unread message with a server timestamp.
func (ms *MemoryStore) CreateMessage(senderID, receiverID, content string) models.Message {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	message := models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
		IsRead:     false,
	}
	ms.messages[message.ID] = message
	ms.messageOrder = append(ms.messageOrder, message.ID)
	return message
}

// GetMessagesBetween returns every message exchanged between the two users
// in creation order.
func (ms *MemoryStore) GetMessagesBetween(userA, userB string) []models.Message {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var messages []models.Message
	for _, id := range ms.messageOrder {
		m := ms.messages[id]
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			messages = append(messages, m)
		}
	}
	return messages
}

// GetMessagesTouching returns every message sent or received by the user in
// creation order.
func (ms *MemoryStore) GetMessagesTouching(userID string) []models.Message {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var messages []models.Message
	for _, id := range ms.messageOrder {
		m := ms.messages[id]
		if m.SenderID == userID || m.ReceiverID == userID {
			messages = append(messages, m)
		}
	}
	return messages
}

// MarkMessagesAsRead flags every unread message from senderID to receiverID
// as read and reports how many flipped. Calling it again is a no-op.
func (ms *MemoryStore) MarkMessagesAsRead(senderID, receiverID string) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	marked := 0
	for id, m := range ms.messages {
		if m.SenderID == senderID && m.ReceiverID == receiverID && !m.IsRead {
			m.IsRead = true
			ms.messages[id] = m
			marked++
		}
	}
	return marked
}

// ---------- copy helpers ----------

func copyUser(u models.User) models.User {
	u.Interests = cloneStrings(u.Interests)
	return u
}

func copyActivity(a models.Activity) models.Activity {
	a.Vibes = cloneStrings(a.Vibes)
	a.ParticipantIDs = cloneStrings(a.ParticipantIDs)
	return a
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
