package services

import (
	"context"
	"testing"

	"unalon_server/models"
)

func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := &ChatService{Store: store}
	sender := newTestUser(t, store, "sender")
	receiver := newTestUser(t, store, "receiver")

	if _, err := svc.SendMessage(ctx, sender.ID, models.MessageInsert{ReceiverID: receiver.ID, Content: "   "}); ErrKind(err) != KindValidation {
		t.Fatalf("expected validation error for blank content, got %v", err)
	}
	if _, err := svc.SendMessage(ctx, sender.ID, models.MessageInsert{ReceiverID: "missing", Content: "hi"}); ErrKind(err) != KindValidation {
		t.Fatalf("expected validation error for unknown receiver, got %v", err)
	}

	message, err := svc.SendMessage(ctx, sender.ID, models.MessageInsert{ReceiverID: receiver.ID, Content: "  hi  "})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if message.Content != "hi" {
		t.Fatalf("expected trimmed content, got %q", message.Content)
	}
	if message.IsRead {
		t.Fatalf("new messages must start unread")
	}
}

func TestThreadRoundTripAndReadMarking(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := &ChatService{Store: store}
	a := newTestUser(t, store, "a")
	b := newTestUser(t, store, "b")
	c := newTestUser(t, store, "c")

	sent, err := svc.SendMessage(ctx, a.ID, models.MessageInsert{ReceiverID: b.ID, Content: "hi"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.SendMessage(ctx, a.ID, models.MessageInsert{ReceiverID: c.ID, Content: "other thread"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	thread, err := svc.GetThread(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(thread) != 1 || thread[0].ID != sent.ID || thread[0].IsRead {
		t.Fatalf("unexpected thread before marking: %+v", thread)
	}

	if err := svc.MarkThreadRead(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := svc.MarkThreadRead(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("mark read twice: %v", err)
	}

	thread, _ = svc.GetThread(ctx, a.ID, b.ID)
	if !thread[0].IsRead {
		t.Fatalf("expected message read after marking")
	}

	// The unrelated a->c thread stays unread.
	other, _ := svc.GetThread(ctx, a.ID, c.ID)
	if other[0].IsRead {
		t.Fatalf("marking one thread must not touch another")
	}
}

func TestListConversationsOrderingAndUnread(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := &ChatService{Store: store}
	me := newTestUser(t, store, "me")
	x := newTestUser(t, store, "x")
	y := newTestUser(t, store, "y")

	// t1: X writes, t2: I answer Y, t3: Y writes twice.
	if _, err := svc.SendMessage(ctx, x.ID, models.MessageInsert{ReceiverID: me.ID, Content: "t1"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.SendMessage(ctx, me.ID, models.MessageInsert{ReceiverID: y.ID, Content: "t2"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.SendMessage(ctx, y.ID, models.MessageInsert{ReceiverID: me.ID, Content: "t3"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	last, err := svc.SendMessage(ctx, y.ID, models.MessageInsert{ReceiverID: me.ID, Content: "t4"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	conversations, err := svc.ListConversations(ctx, me.ID)
	if err != nil {
		t.Fatalf("conversations: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(conversations))
	}

	if conversations[0].User.ID != y.ID || conversations[1].User.ID != x.ID {
		t.Fatalf("conversations not ordered by last message: [%s, %s]", conversations[0].User.Username, conversations[1].User.Username)
	}
	if conversations[0].LastMessage.ID != last.ID {
		t.Fatalf("wrong last message for Y")
	}
	if conversations[0].UnreadCount != 2 {
		t.Fatalf("expected 2 unread from Y, got %d", conversations[0].UnreadCount)
	}
	if conversations[1].UnreadCount != 1 {
		t.Fatalf("expected 1 unread from X, got %d", conversations[1].UnreadCount)
	}

	// Reading X's thread zeroes only X's badge.
	if err := svc.MarkThreadRead(ctx, me.ID, x.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	conversations, _ = svc.ListConversations(ctx, me.ID)
	if conversations[1].UnreadCount != 0 {
		t.Fatalf("expected X badge cleared, got %d", conversations[1].UnreadCount)
	}
	if conversations[0].UnreadCount != 2 {
		t.Fatalf("Y badge must be untouched, got %d", conversations[0].UnreadCount)
	}
}
