package services

import (
	"log"
	"time"

	"unalon_server/models"
)

// SeedDemoData loads the demo fixtures into an empty store: ten users, four
// activities with settled participant lists, and a short message history
// between the first three users. Ids are generated, so fixtures are wired
// together by the returned handles rather than hardcoded ids.
func SeedDemoData(store *MemoryStore) {
	intp := func(v int) *int { return &v }

	userInserts := []models.UserInsert{
		{Username: "ethan_sf", Email: "ethan@example.com", Name: "Ethan", Age: intp(24), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=400&h=400", Interests: []string{"Hiking", "Photography", "Reading", "Cooking", "Travel"}, FavoriteQuote: "The only way to do great work is to love what you do."},
		{Username: "sarah_games", Email: "sarah@example.com", Name: "Sarah", Age: intp(28), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=400&h=400", Interests: []string{"Board Games", "Social", "Fun"}, FavoriteQuote: "Life is more fun when you share it with others."},
		{Username: "marcus_coffee", Email: "marcus@example.com", Name: "Marcus", Age: intp(26), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=400&h=400", Interests: []string{"Coffee", "Conversations", "Philosophy"}, FavoriteQuote: "Good coffee and good conversation make everything better."},
		{Username: "alex_hiker", Email: "alex@example.com", Name: "Alex", Age: intp(30), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=400&h=400", Interests: []string{"Hiking", "Outdoors", "Adventure"}, FavoriteQuote: "The mountains are calling and I must go."},
		{Username: "maya_photo", Email: "maya@example.com", Name: "Maya", Age: intp(25), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?auto=format&fit=crop&w=400&h=400", Interests: []string{"Photography", "Art", "Urban Exploration"}, FavoriteQuote: "Every picture tells a story."},
		{Username: "emma_bookworm", Email: "emma@example.com", Name: "Emma", Age: intp(27), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?auto=format&fit=crop&w=400&h=400", Interests: []string{"Reading", "Books", "Writing"}, FavoriteQuote: "Books are a uniquely portable magic."},
		{Username: "david_musician", Email: "david@example.com", Name: "David", Age: intp(31), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=400&h=400", Interests: []string{"Music", "Guitar", "Jazz"}, FavoriteQuote: "Music is the universal language."},
		{Username: "lisa_yoga", Email: "lisa@example.com", Name: "Lisa", Age: intp(29), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=400&h=400", Interests: []string{"Yoga", "Meditation", "Wellness"}, FavoriteQuote: "Peace comes from within."},
		{Username: "james_cook", Email: "james@example.com", Name: "James", Age: intp(33), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?auto=format&fit=crop&w=400&h=400", Interests: []string{"Cooking", "Food", "Culinary Arts"}, FavoriteQuote: "Good food is the foundation of genuine happiness."},
		{Username: "nina_artist", Email: "nina@example.com", Name: "Nina", Age: intp(26), Location: "San Francisco", Avatar: "https://images.unsplash.com/photo-1531123897727-8f129e1688ce?auto=format&fit=crop&w=400&h=400", Interests: []string{"Art", "Painting", "Creative Expression"}, FavoriteQuote: "Art is the lie that enables us to realize the truth."},
	}

	users := make([]models.User, 0, len(userInserts))
	for _, insert := range userInserts {
		user, err := store.CreateUser(insert)
		if err != nil {
			log.Printf("⚠️ Skipping seed user %s: %v", insert.Username, err)
			continue
		}
		users = append(users, user)
	}
	if len(users) < 3 {
		log.Printf("❌ Seed aborted: store was not empty")
		return
	}
	byIndex := func(i int) string { return users[i-1].ID } // fixtures speak in user1..user10

	now := time.Now()
	activityFixtures := []struct {
		insert       models.ActivityInsert
		host         int
		participants []int
	}{
		{
			insert: models.ActivityInsert{
				Title:           "Board Game Night",
				Description:     "🎲 Weekly social gathering for strategy games and fun!",
				Location:        "Community Center",
				Datetime:        now.Add(3 * time.Hour),
				Duration:        "3 hours",
				MaxParticipants: 8,
				Vibes:           []string{"Social", "Fun"},
				Image:           "https://images.unsplash.com/photo-1611371805429-8b5c1b2c34ba?auto=format&fit=crop&w=800&h=600",
			},
			host:         2,
			participants: []int{1, 3, 4, 6, 7},
		},
		{
			insert: models.ActivityInsert{
				Title:           "Coffee & Conversation",
				Description:     "☕ Deep conversations over great coffee - perfect Sunday morning!",
				Location:        "Blue Bottle Coffee",
				Datetime:        now.Add(24 * time.Hour),
				Duration:        "1.5 hours",
				MaxParticipants: 6,
				Vibes:           []string{"Chill", "Talkative"},
				Image:           "https://images.unsplash.com/photo-1554118811-1e0d58224f24?auto=format&fit=crop&w=800&h=600",
			},
			host:         3,
			participants: []int{5, 8, 9},
		},
		{
			insert: models.ActivityInsert{
				Title:           "Weekend Hiking Adventure",
				Description:     "🥾 Explore beautiful trails with amazing city views!",
				Location:        "Twin Peaks Trailhead",
				Datetime:        now.Add(5 * 24 * time.Hour),
				Duration:        "4 hours",
				MaxParticipants: 12,
				Vibes:           []string{"Adventurous", "Outdoors"},
				Image:           "https://images.unsplash.com/photo-1551632811-561732d1e306?auto=format&fit=crop&w=800&h=600",
			},
			host:         4,
			participants: []int{1, 2, 3, 5, 6, 8, 10},
		},
		{
			insert: models.ActivityInsert{
				Title:           "Urban Photography Walk",
				Description:     "📸 Capture the city's hidden gems and street art!",
				Location:        "Mission District",
				Datetime:        now.Add(6 * 24 * time.Hour),
				Duration:        "2.5 hours",
				MaxParticipants: 10,
				Vibes:           []string{"Creative", "Urban"},
				Image:           "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?auto=format&fit=crop&w=800&h=600",
			},
			host:         5,
			participants: []int{2, 4, 7, 10},
		},
	}

	for _, fixture := range activityFixtures {
		activity := store.CreateActivity(byIndex(fixture.host), fixture.insert)

		participants := make([]string, 0, len(fixture.participants))
		for _, idx := range fixture.participants {
			participants = append(participants, byIndex(idx))
		}
		count := len(participants)
		store.UpdateActivity(activity.ID, models.ActivityPatch{
			CurrentParticipants: &count,
			ParticipantIDs:      &participants,
		})
	}

	// A short read history, then one fresh unread message so the demo inbox
	// shows a badge.
	store.CreateMessage(byIndex(3), byIndex(1), "Looking forward to our coffee chat tomorrow!")
	store.CreateMessage(byIndex(2), byIndex(1), "Hi! Thanks for joining the board game night!")
	store.CreateMessage(byIndex(1), byIndex(2), "Excited to be there! What games are we playing?")
	store.MarkMessagesAsRead(byIndex(3), byIndex(1))
	store.MarkMessagesAsRead(byIndex(2), byIndex(1))
	store.MarkMessagesAsRead(byIndex(1), byIndex(2))
	store.CreateMessage(byIndex(2), byIndex(1), "Great! See you tonight for board games 🎲")

	log.Printf("✅ Seeded demo data: %d users, %d activities", len(users), len(activityFixtures))
}
