package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

func TestConversationRepository_RecordMessage(t *testing.T) {
	store := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("creates the conversation on first message", func(t *testing.T) {
		message, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionInbound, "hello", "SM001", "received")
		if err != nil {
			t.Fatalf("RecordMessage() unexpected error: %v", err)
		}
		if message.ID == 0 || message.ConversationID == 0 {
			t.Fatalf("RecordMessage() = %+v, want assigned ids", message)
		}

		conversations, err := store.ListByBusiness(ctx, 1)
		if err != nil {
			t.Fatalf("ListByBusiness() unexpected error: %v", err)
		}
		if len(conversations) != 1 {
			t.Fatalf("ListByBusiness() returned %d conversations, want 1", len(conversations))
		}
		cv := conversations[0]
		if cv.LastMessageBody != "hello" || cv.UnreadCount != 1 {
			t.Errorf("conversation = %+v, want last message hello and unread 1", cv)
		}
	})

	t.Run("reuses the conversation for the same contact", func(t *testing.T) {
		first, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionInbound, "second", "SM002", "received")
		if err != nil {
			t.Fatalf("RecordMessage() unexpected error: %v", err)
		}
		outbound, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionOutbound, "reply", "SM003", "queued")
		if err != nil {
			t.Fatalf("RecordMessage() unexpected error: %v", err)
		}
		if outbound.ConversationID != first.ConversationID {
			t.Errorf("outbound conversation = %d, want %d", outbound.ConversationID, first.ConversationID)
		}

		conversations, _ := store.ListByBusiness(ctx, 1)
		if len(conversations) != 1 {
			t.Fatalf("ListByBusiness() returned %d conversations, want 1", len(conversations))
		}
		// Two inbound so far; the outbound reply must not bump the counter
		if conversations[0].UnreadCount != 2 {
			t.Errorf("unread count = %d, want 2", conversations[0].UnreadCount)
		}
		if conversations[0].LastMessageBody != "reply" {
			t.Errorf("last message = %q, want the outbound reply", conversations[0].LastMessageBody)
		}
	})

	t.Run("rejects a message without a provider sid", func(t *testing.T) {
		if _, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionInbound, "no sid", "", "received"); err == nil {
			t.Error("RecordMessage() should reject an empty provider sid")
		}
	})

	t.Run("duplicate provider sid returns the stored message", func(t *testing.T) {
		duplicate, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionInbound, "second", "SM002", "received")
		if err != nil {
			t.Fatalf("RecordMessage() duplicate unexpected error: %v", err)
		}

		messages, err := store.ListMessages(ctx, duplicate.ConversationID)
		if err != nil {
			t.Fatalf("ListMessages() unexpected error: %v", err)
		}
		if len(messages) != 3 {
			t.Errorf("ListMessages() returned %d messages, want 3 (duplicate dropped)", len(messages))
		}

		conversations, _ := store.ListByBusiness(ctx, 1)
		if conversations[0].UnreadCount != 2 {
			t.Errorf("unread count after duplicate = %d, want unchanged 2", conversations[0].UnreadCount)
		}
	})
}

func TestConversationRepository_ListMessages(t *testing.T) {
	store := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	var conversationID uint
	for i := 0; i < 3; i++ {
		message, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionInbound, fmt.Sprintf("message %d", i), fmt.Sprintf("SM%03d", i), "received")
		if err != nil {
			t.Fatalf("RecordMessage() unexpected error: %v", err)
		}
		conversationID = message.ConversationID
	}

	messages, err := store.ListMessages(ctx, conversationID)
	if err != nil {
		t.Fatalf("ListMessages() unexpected error: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("ListMessages() returned %d messages, want 3", len(messages))
	}
	for i, m := range messages {
		if m.Body != fmt.Sprintf("message %d", i) {
			t.Errorf("messages[%d].Body = %q, want creation order preserved", i, m.Body)
		}
	}

	if _, err := store.ListMessages(ctx, 999); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Errorf("ListMessages() error = %v, want ErrConversationNotFound", err)
	}
}

func TestConversationRepository_ListByBusiness(t *testing.T) {
	store := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionInbound, "older", "SM001", "received"); err != nil {
		t.Fatalf("RecordMessage() unexpected error: %v", err)
	}
	if _, err := store.RecordMessage(ctx, 1, "+12025550124", domain.DirectionInbound, "newer", "SM002", "received"); err != nil {
		t.Fatalf("RecordMessage() unexpected error: %v", err)
	}
	if _, err := store.RecordMessage(ctx, 2, "+12025550125", domain.DirectionInbound, "other tenant", "SM003", "received"); err != nil {
		t.Fatalf("RecordMessage() unexpected error: %v", err)
	}

	conversations, err := store.ListByBusiness(ctx, 1)
	if err != nil {
		t.Fatalf("ListByBusiness() unexpected error: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("ListByBusiness() returned %d conversations, want 2", len(conversations))
	}
	if conversations[0].LastMessageBody != "newer" {
		t.Errorf("ListByBusiness() first = %q, want most recent conversation first", conversations[0].LastMessageBody)
	}
}

func TestConversationRepository_MarkRead(t *testing.T) {
	store := NewConversationRepository(setupTestDB(t))
	ctx := context.Background()

	message, err := store.RecordMessage(ctx, 1, "+12025550123", domain.DirectionInbound, "hello", "SM001", "received")
	if err != nil {
		t.Fatalf("RecordMessage() unexpected error: %v", err)
	}

	if err := store.MarkRead(ctx, message.ConversationID); err != nil {
		t.Fatalf("MarkRead() unexpected error: %v", err)
	}
	conversations, _ := store.ListByBusiness(ctx, 1)
	if conversations[0].UnreadCount != 0 {
		t.Errorf("unread count after MarkRead = %d, want 0", conversations[0].UnreadCount)
	}

	if err := store.MarkRead(ctx, 999); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Errorf("MarkRead() error = %v, want ErrConversationNotFound", err)
	}
}
