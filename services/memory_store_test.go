package services

import (
	"testing"
	"time"

	"unalon_server/models"
)

func TestCreateUserAssignsServerFields(t *testing.T) {
	store := NewMemoryStore()

	user, err := store.CreateUser(models.UserInsert{
		Username: "ethan_sf", Email: "ethan@example.com", Name: "Ethan",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.UnalonScore != 0 {
		t.Fatalf("expected unalonScore 0, got %d", user.UnalonScore)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected server createdAt")
	}
	if user.Interests == nil {
		t.Fatalf("expected non-nil interests default")
	}

	got, ok := store.GetUserByEmail("ethan@example.com")
	if !ok || got.ID != user.ID {
		t.Fatalf("lookup by email failed")
	}
}

func TestCreateUserUniqueness(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.CreateUser(models.UserInsert{Username: "ethan_sf", Email: "ethan@example.com", Name: "Ethan"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := store.CreateUser(models.UserInsert{Username: "other", Email: "ethan@example.com", Name: "Other"})
	if err == nil || ErrKind(err) != KindConflict {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}

	_, err = store.CreateUser(models.UserInsert{Username: "ethan_sf", Email: "new@example.com", Name: "Other"})
	if err == nil || ErrKind(err) != KindConflict {
		t.Fatalf("expected conflict on duplicate username, got %v", err)
	}
}

func TestReadsReturnValueCopies(t *testing.T) {
	store := NewMemoryStore()

	user, err := store.CreateUser(models.UserInsert{
		Username: "maya_photo", Email: "maya@example.com", Name: "Maya",
		Interests: []string{"Photography"},
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, _ := store.GetUser(user.ID)
	got.Interests[0] = "mutated"

	fresh, _ := store.GetUser(user.ID)
	if fresh.Interests[0] != "Photography" {
		t.Fatalf("store state was mutated through a returned copy")
	}

	activity := store.CreateActivity(user.ID, models.ActivityInsert{
		Title: "Walk", Description: "d", Location: "l",
		Datetime: time.Now().Add(time.Hour), Duration: "1h", MaxParticipants: 3,
		Vibes: []string{"Chill"},
	})
	copied, _ := store.GetActivity(activity.ID)
	copied.Vibes[0] = "mutated"

	freshActivity, _ := store.GetActivity(activity.ID)
	if freshActivity.Vibes[0] != "Chill" {
		t.Fatalf("activity state was mutated through a returned copy")
	}
}

func TestUpdateActivityPatch(t *testing.T) {
	store := NewMemoryStore()
	host, _ := store.CreateUser(models.UserInsert{Username: "h", Email: "h@example.com", Name: "H"})

	activity := store.CreateActivity(host.ID, models.ActivityInsert{
		Title: "Hike", Description: "d", Location: "l",
		Datetime: time.Now().Add(time.Hour), Duration: "2h", MaxParticipants: 5,
	})

	participants := []string{"u1", "u2"}
	count := 2
	updated, ok := store.UpdateActivity(activity.ID, models.ActivityPatch{
		CurrentParticipants: &count,
		ParticipantIDs:      &participants,
	})
	if !ok {
		t.Fatalf("update failed")
	}
	if updated.CurrentParticipants != 2 || len(updated.ParticipantIDs) != 2 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Title != "Hike" {
		t.Fatalf("patch touched an immutable field")
	}

	if _, ok := store.UpdateActivity("missing", models.ActivityPatch{}); ok {
		t.Fatalf("expected update of unknown id to report absence")
	}
}

func TestListActivitiesOrdering(t *testing.T) {
	store := NewMemoryStore()
	host, _ := store.CreateUser(models.UserInsert{Username: "h", Email: "h@example.com", Name: "H"})

	later := store.CreateActivity(host.ID, models.ActivityInsert{
		Title: "Later", Description: "d", Location: "l",
		Datetime: time.Now().Add(48 * time.Hour), Duration: "1h", MaxParticipants: 2,
	})
	sooner := store.CreateActivity(host.ID, models.ActivityInsert{
		Title: "Sooner", Description: "d", Location: "l",
		Datetime: time.Now().Add(1 * time.Hour), Duration: "1h", MaxParticipants: 2,
	})

	activities := store.ListActivities()
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].ID != sooner.ID || activities[1].ID != later.ID {
		t.Fatalf("activities not ordered by ascending datetime")
	}
}

func TestMessagesKeepCreationOrder(t *testing.T) {
	store := NewMemoryStore()
	a, _ := store.CreateUser(models.UserInsert{Username: "a", Email: "a@example.com", Name: "A"})
	b, _ := store.CreateUser(models.UserInsert{Username: "b", Email: "b@example.com", Name: "B"})

	first := store.CreateMessage(a.ID, b.ID, "one")
	second := store.CreateMessage(b.ID, a.ID, "two")
	third := store.CreateMessage(a.ID, b.ID, "three")

	thread := store.GetMessagesBetween(a.ID, b.ID)
	if len(thread) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(thread))
	}
	want := []string{first.ID, second.ID, third.ID}
	for i, m := range thread {
		if m.ID != want[i] {
			t.Fatalf("message %d out of creation order", i)
		}
	}
}

func TestMarkMessagesAsReadIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	a, _ := store.CreateUser(models.UserInsert{Username: "a", Email: "a@example.com", Name: "A"})
	b, _ := store.CreateUser(models.UserInsert{Username: "b", Email: "b@example.com", Name: "B"})

	store.CreateMessage(a.ID, b.ID, "hello")
	store.CreateMessage(b.ID, a.ID, "reply")

	if marked := store.MarkMessagesAsRead(a.ID, b.ID); marked != 1 {
		t.Fatalf("expected 1 message marked, got %d", marked)
	}
	if marked := store.MarkMessagesAsRead(a.ID, b.ID); marked != 0 {
		t.Fatalf("expected second call to be a no-op, got %d", marked)
	}

	thread := store.GetMessagesBetween(a.ID, b.ID)
	if !thread[0].IsRead {
		t.Fatalf("a->b message should be read")
	}
	if thread[1].IsRead {
		t.Fatalf("b->a message should be untouched")
	}
}
