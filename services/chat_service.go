package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"unalon_server/models"
)

// ChatService handles directed messages between users, thread fetching and
// the per-counterpart conversation summaries.
type ChatService struct {
	Store *MemoryStore
}

// SendMessage stores a new unread message from senderID. Content must be
// non-empty after trimming and the receiver must exist.
func (s *ChatService) SendMessage(ctx context.Context, senderID string, insert models.MessageInsert) (models.Message, error) {
	content := strings.TrimSpace(insert.Content)
	if content == "" {
		return models.Message{}, NewError(KindValidation, "Message content is required")
	}
	if _, ok := s.Store.GetUser(insert.ReceiverID); !ok {
		return models.Message{}, NewError(KindValidation, "Receiver does not exist")
	}

	message := s.Store.CreateMessage(senderID, insert.ReceiverID, content)
	log.Printf("📩 Message %s: %s -> %s", message.ID, senderID, insert.ReceiverID)
	return message, nil
}

// GetThread returns every message between the two users in ascending
// timestamp order.
func (s *ChatService) GetThread(ctx context.Context, userA, userB string) ([]models.Message, error) {
	messages := s.Store.GetMessagesBetween(userA, userB)
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// MarkThreadRead flags every unread message from fromID to readerID as
// read. Idempotent; marking an empty thread is a no-op.
func (s *ChatService) MarkThreadRead(ctx context.Context, readerID, fromID string) error {
	if marked := s.Store.MarkMessagesAsRead(fromID, readerID); marked > 0 {
		log.Printf("✅ Marked %d messages from %s as read for %s", marked, fromID, readerID)
	}
	return nil
}

// ListConversations groups all messages touching userID by counterpart and
// summarizes each group as {user, last message, unread count}, newest
// conversation first.
func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	messages := s.Store.GetMessagesTouching(userID)

	type group struct {
		lastMessage models.Message
		unreadCount int
	}
	groups := make(map[string]*group)
	var order []string

	for _, message := range messages {
		counterpartID := message.SenderID
		if counterpartID == userID {
			counterpartID = message.ReceiverID
		}

		g, ok := groups[counterpartID]
		if !ok {
			g = &group{lastMessage: message}
			groups[counterpartID] = g
			order = append(order, counterpartID)
		} else if !message.Timestamp.Before(g.lastMessage.Timestamp) {
			g.lastMessage = message
		}
		if message.SenderID == counterpartID && !message.IsRead {
			g.unreadCount++
		}
	}

	conversations := make([]models.Conversation, 0, len(groups))
	for _, counterpartID := range order {
		user, ok := s.Store.GetUser(counterpartID)
		if !ok {
			log.Printf("⚠️ Skipping conversation with unknown user %s", counterpartID)
			continue
		}
		g := groups[counterpartID]
		conversations = append(conversations, models.Conversation{
			User:        user,
			LastMessage: g.lastMessage,
			UnreadCount: g.unreadCount,
		})
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Timestamp.After(conversations[j].LastMessage.Timestamp)
	})
	return conversations, nil
}
