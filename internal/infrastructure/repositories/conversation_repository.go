package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// ConversationRepositoryImpl implements domain.ConversationStore using GORM
type ConversationRepositoryImpl struct {
	db *gorm.DB
}

// DBConversation represents the database model for Conversation
type DBConversation struct {
	ID              uint   `gorm:"primaryKey"`
	BusinessID      uint   `gorm:"uniqueIndex:idx_business_contact"`
	ContactNumber   string `gorm:"uniqueIndex:idx_business_contact;size:32"`
	LastMessageBody string
	LastMessageAt   time.Time `gorm:"index"`
	UnreadCount     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DBConversation) TableName() string {
	return "conversations"
}

// DBMessage represents the database model for Message
type DBMessage struct {
	ID             uint   `gorm:"primaryKey"`
	ConversationID uint   `gorm:"index"`
	Direction      string `gorm:"size:16"`
	Body           string
	ProviderSID    string `gorm:"column:provider_sid;uniqueIndex;size:64"`
	Status         string `gorm:"size:32"`
	CreatedAt      time.Time
}

func (DBMessage) TableName() string {
	return "messages"
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) domain.ConversationStore {
	return &ConversationRepositoryImpl{db: db}
}

// RecordMessage finds-or-creates the conversation for (businessID, contactNumber),
// appends the message, and updates the conversation summary in one transaction.
// The unread increment is an atomic SQL expression, so concurrent writers on the
// same conversation cannot lose updates. Idempotent on providerSID: a duplicate
// delivery returns the already-stored message.
func (r *ConversationRepositoryImpl) RecordMessage(ctx context.Context, businessID uint, contactNumber, direction, body, providerSID, status string) (*domain.Message, error) {
	// Every stored message carries the provider's SID; the unique index on
	// provider_sid would otherwise collide on empty strings.
	if providerSID == "" {
		return nil, fmt.Errorf("provider message sid is required")
	}

	var stored DBMessage

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing DBMessage
		err := tx.Where("provider_sid = ?", providerSID).First(&existing).Error
		if err == nil {
			stored = existing
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		conversation := DBConversation{
			BusinessID:    businessID,
			ContactNumber: contactNumber,
		}
		if err := tx.Where("business_id = ? AND contact_number = ?", businessID, contactNumber).
			FirstOrCreate(&conversation).Error; err != nil {
			return err
		}

		message := DBMessage{
			ConversationID: conversation.ID,
			Direction:      direction,
			Body:           body,
			ProviderSID:    providerSID,
			Status:         status,
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"last_message_body": body,
			"last_message_at":   message.CreatedAt,
		}
		if direction == domain.DirectionInbound {
			updates["unread_count"] = gorm.Expr("unread_count + ?", 1)
		}
		if err := tx.Model(&DBConversation{}).Where("id = ?", conversation.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		stored = message
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.dbToDomainMessage(&stored), nil
}

// ListByBusiness implements domain.ConversationStore, most recent message first
func (r *ConversationRepositoryImpl) ListByBusiness(ctx context.Context, businessID uint) ([]*domain.Conversation, error) {
	var dbConversations []DBConversation
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("last_message_at DESC").
		Find(&dbConversations).Error
	if err != nil {
		return nil, err
	}

	conversations := make([]*domain.Conversation, 0, len(dbConversations))
	for i := range dbConversations {
		conversations = append(conversations, r.dbToDomainConversation(&dbConversations[i]))
	}
	return conversations, nil
}

// ListMessages implements domain.ConversationStore, ascending by creation time
func (r *ConversationRepositoryImpl) ListMessages(ctx context.Context, conversationID uint) ([]*domain.Message, error) {
	var dbConversation DBConversation
	if err := r.db.WithContext(ctx).Where("id = ?", conversationID).First(&dbConversation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}

	var dbMessages []DBMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id ASC").
		Find(&dbMessages).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*domain.Message, 0, len(dbMessages))
	for i := range dbMessages {
		messages = append(messages, r.dbToDomainMessage(&dbMessages[i]))
	}
	return messages, nil
}

// MarkRead implements domain.ConversationStore
func (r *ConversationRepositoryImpl) MarkRead(ctx context.Context, conversationID uint) error {
	res := r.db.WithContext(ctx).Model(&DBConversation{}).
		Where("id = ?", conversationID).
		Update("unread_count", 0)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

func (r *ConversationRepositoryImpl) dbToDomainConversation(c *DBConversation) *domain.Conversation {
	return &domain.Conversation{
		ID:              c.ID,
		BusinessID:      c.BusinessID,
		ContactNumber:   c.ContactNumber,
		LastMessageBody: c.LastMessageBody,
		LastMessageAt:   c.LastMessageAt,
		UnreadCount:     c.UnreadCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (r *ConversationRepositoryImpl) dbToDomainMessage(m *DBMessage) *domain.Message {
	return &domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Direction:      m.Direction,
		Body:           m.Body,
		ProviderSID:    m.ProviderSID,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
	}
}
