package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"unalon_server/models"
)

// ActivityService owns the activity lifecycle: creation, listing, the
// join-request workflow and the request state machine. Capacity-affecting
// sequences for one activity are serialized on a per-activity lock, so two
// racing acceptances can never oversell the last seat; different activities
// proceed in parallel.
type ActivityService struct {
	Store *MemoryStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// activityLock returns the mutex guarding one activity's
// check-then-mutate sequences.
func (s *ActivityService) activityLock(activityID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := s.locks[activityID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[activityID] = lock
	}
	return lock
}

// CreateActivity validates the payload and stores a new activity hosted by
// hostID, returning it with the resolved host.
func (s *ActivityService) CreateActivity(ctx context.Context, hostID string, insert models.ActivityInsert) (models.ActivityDetail, error) {
	insert.Title = strings.TrimSpace(insert.Title)
	insert.Description = strings.TrimSpace(insert.Description)
	insert.Location = strings.TrimSpace(insert.Location)

	switch {
	case insert.Title == "", insert.Description == "", insert.Location == "":
		return models.ActivityDetail{}, NewError(KindValidation, "Title, description and location are required")
	case insert.Datetime.IsZero():
		return models.ActivityDetail{}, NewError(KindValidation, "Datetime is required")
	case insert.MaxParticipants < 1:
		return models.ActivityDetail{}, NewError(KindValidation, "maxParticipants must be at least 1")
	}

	host, ok := s.Store.GetUser(hostID)
	if !ok {
		return models.ActivityDetail{}, NewError(KindNotFound, "Host not found")
	}

	activity := s.Store.CreateActivity(hostID, insert)
	log.Printf("✅ Activity created: %q (%s) hosted by %s", activity.Title, activity.ID, host.Username)

	return models.ActivityDetail{Activity: activity, Host: &host}, nil
}

// ListActivities returns all activities ordered by ascending datetime, each
// with resolved host and participants. When viewerID is non-empty every
// activity is annotated with whether that viewer has asked to join.
func (s *ActivityService) ListActivities(ctx context.Context, viewerID string) ([]models.ActivityDetail, error) {
	activities := s.Store.ListActivities()

	details := make([]models.ActivityDetail, 0, len(activities))
	for _, activity := range activities {
		details = append(details, s.annotate(activity, viewerID, true))
	}
	return details, nil
}

// GetActivity fetches one activity with resolved host, participants and the
// viewer's request flag.
func (s *ActivityService) GetActivity(ctx context.Context, id, viewerID string) (models.ActivityDetail, error) {
	activity, ok := s.Store.GetActivity(id)
	if !ok {
		return models.ActivityDetail{}, NewError(KindNotFound, "Activity not found")
	}
	return s.annotate(activity, viewerID, true), nil
}

// RequestToJoin files a pending join request for userID on an activity.
// Hosts and existing participants cannot request; full activities and
// duplicate requests are refused.
func (s *ActivityService) RequestToJoin(ctx context.Context, activityID, userID string) (models.ActivityRequest, error) {
	lock := s.activityLock(activityID)
	lock.Lock()
	defer lock.Unlock()

	activity, ok := s.Store.GetActivity(activityID)
	if !ok {
		return models.ActivityRequest{}, NewError(KindNotFound, "Activity not found")
	}

	if activity.HostID == userID || containsString(activity.ParticipantIDs, userID) {
		return models.ActivityRequest{}, NewError(KindConflict, "Already participating in this activity")
	}
	if activity.CurrentParticipants >= activity.MaxParticipants {
		return models.ActivityRequest{}, NewError(KindCapacity, "Activity is full")
	}
	if existing, ok := s.Store.GetUserActivityRequest(activityID, userID); ok {
		log.Printf("⚠️ Duplicate join request by %s for activity %s (existing %s, %s)", userID, activityID, existing.ID, existing.Status)
		return models.ActivityRequest{}, NewError(KindConflict, "Already requested to join this activity")
	}

	request := s.Store.CreateActivityRequest(activityID, userID)
	log.Printf("📩 Join request %s: user %s -> activity %q", request.ID, userID, activity.Title)
	return request, nil
}

// ListRequests returns an activity's join requests with resolved users.
// Only the host may review them.
func (s *ActivityService) ListRequests(ctx context.Context, activityID, actorID string) ([]models.ActivityRequestDetail, error) {
	activity, ok := s.Store.GetActivity(activityID)
	if !ok {
		return nil, NewError(KindNotFound, "Activity not found")
	}
	if activity.HostID != actorID {
		return nil, NewError(KindUnauthorized, "Only the host can review requests")
	}

	requests := s.Store.GetActivityRequests(activityID)
	details := make([]models.ActivityRequestDetail, 0, len(requests))
	for _, request := range requests {
		detail := models.ActivityRequestDetail{ActivityRequest: request}
		if user, ok := s.Store.GetUser(request.UserID); ok {
			detail.User = &user
		}
		details = append(details, detail)
	}
	return details, nil
}

// ResolveRequest moves a pending request to accepted or rejected. Only the
// activity's host may decide. Acceptance re-checks capacity at the moment
// of the decision and, when it holds, appends the user to the participant
// list and bumps currentParticipants in one patch; when the activity filled
// up in the meantime the request stays pending. Resolved requests are
// terminal.
func (s *ActivityService) ResolveRequest(ctx context.Context, requestID, decision, actorID string) (models.ActivityRequest, error) {
	if decision != models.RequestStatusAccepted && decision != models.RequestStatusRejected {
		return models.ActivityRequest{}, NewError(KindValidation, "Decision must be accepted or rejected")
	}

	request, ok := s.Store.GetActivityRequest(requestID)
	if !ok {
		return models.ActivityRequest{}, NewError(KindNotFound, "Request not found")
	}

	lock := s.activityLock(request.ActivityID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: a racing resolve may have settled it already.
	request, ok = s.Store.GetActivityRequest(requestID)
	if !ok {
		return models.ActivityRequest{}, NewError(KindNotFound, "Request not found")
	}

	activity, ok := s.Store.GetActivity(request.ActivityID)
	if !ok {
		return models.ActivityRequest{}, NewError(KindNotFound, "Activity not found")
	}
	if activity.HostID != actorID {
		return models.ActivityRequest{}, NewError(KindUnauthorized, "Only the host can resolve requests")
	}
	if request.Status != models.RequestStatusPending {
		return models.ActivityRequest{}, NewError(KindInvalidState, "Request is already %s", request.Status)
	}

	if decision == models.RequestStatusAccepted {
		if activity.CurrentParticipants >= activity.MaxParticipants {
			log.Printf("⚠️ Cannot accept request %s: activity %s is full", requestID, activity.ID)
			return models.ActivityRequest{}, NewError(KindCapacity, "Activity is full")
		}

		participants := append(cloneStrings(activity.ParticipantIDs), request.UserID)
		count := len(participants)
		if _, ok := s.Store.UpdateActivity(activity.ID, models.ActivityPatch{
			CurrentParticipants: &count,
			ParticipantIDs:      &participants,
		}); !ok {
			return models.ActivityRequest{}, NewError(KindInternal, "Failed to update activity")
		}
		log.Printf("✅ Request %s accepted: user %s joined activity %q (%d/%d)", requestID, request.UserID, activity.Title, count, activity.MaxParticipants)
	} else {
		log.Printf("✅ Request %s rejected for activity %q", requestID, activity.Title)
	}

	updated, ok := s.Store.UpdateActivityRequestStatus(requestID, decision)
	if !ok {
		return models.ActivityRequest{}, NewError(KindInternal, "Failed to update request")
	}
	return updated, nil
}

// ListMyPlans partitions the activities the user hosts or has joined into
// upcoming and past, each with resolved host.
func (s *ActivityService) ListMyPlans(ctx context.Context, userID string) (models.MyPlans, error) {
	activities := s.Store.GetActivitiesByParticipant(userID)

	plans := models.MyPlans{
		Upcoming: []models.ActivityDetail{},
		Past:     []models.ActivityDetail{},
	}
	now := time.Now()
	for _, activity := range activities {
		detail := s.annotate(activity, "", false)
		if activity.Datetime.After(now) {
			plans.Upcoming = append(plans.Upcoming, detail)
		} else {
			plans.Past = append(plans.Past, detail)
		}
	}
	return plans, nil
}

// annotate resolves an activity's host, optionally its participants, and
// the viewer's request flag.
func (s *ActivityService) annotate(activity models.Activity, viewerID string, withParticipants bool) models.ActivityDetail {
	detail := models.ActivityDetail{Activity: activity}

	if host, ok := s.Store.GetUser(activity.HostID); ok {
		detail.Host = &host
	}
	if withParticipants {
		participants := s.Store.GetUsersByIDs(activity.ParticipantIDs)
		detail.Participants = participants
	}
	if viewerID != "" {
		_, requested := s.Store.GetUserActivityRequest(activity.ID, viewerID)
		detail.UserRequested = requested
	}
	return detail
}
