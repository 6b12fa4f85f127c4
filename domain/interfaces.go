package domain

import (
	"context"
	"time"
)

// BusinessRepository defines business data access operations
type BusinessRepository interface {
	Create(ctx context.Context, business *Business) error
	FindByID(ctx context.Context, id uint) (*Business, error)
	FindByPhone(ctx context.Context, phone string) (*Business, error)
	FindByCustomNumber(ctx context.Context, number string) (*Business, error)
	List(ctx context.Context) ([]*Business, error)
	Update(ctx context.Context, business *Business) error
	Activate(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// VerificationRepository persists verification attempts and checks
type VerificationRepository interface {
	CreateAttempt(ctx context.Context, attempt *VerificationAttempt) error
	LatestAttempt(ctx context.Context, businessID uint, phone string) (*VerificationAttempt, error)
	CreateCheck(ctx context.Context, check *VerificationCheck) error
}

// ConversationStore persists conversations and their messages
type ConversationStore interface {
	RecordMessage(ctx context.Context, businessID uint, contactNumber, direction, body, providerSID, status string) (*Message, error)
	ListByBusiness(ctx context.Context, businessID uint) ([]*Conversation, error)
	ListMessages(ctx context.Context, conversationID uint) ([]*Message, error)
	MarkRead(ctx context.Context, conversationID uint) error
}

// VerifyProvider wraps the upstream phone-verification service
type VerifyProvider interface {
	CreateService(ctx context.Context, friendlyName string) (string, error)
	SendCode(ctx context.Context, serviceSID, phone, channel string) (sid, status string, err error)
	CheckCode(ctx context.Context, serviceSID, phone, code string) (status string, valid bool, err error)
}

// MessageProvider wraps the upstream SMS service
type MessageProvider interface {
	Send(ctx context.Context, from, to, body string) (sid, status string, err error)
}

// ReplayGuard provides short-lived first-writer-wins keys. Used to throttle
// verification resends and to drop duplicate webhook deliveries.
type ReplayGuard interface {
	// FirstSeen returns true when key was not present and is now reserved for ttl
	FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Wait returns the remaining reservation on key, zero when none
	Wait(ctx context.Context, key string) (time.Duration, error)
	// Release drops the reservation on key
	Release(ctx context.Context, key string) error
}

// BusinessService defines tenant registry business logic
type BusinessService interface {
	Register(ctx context.Context, name, email, phone string) (*Business, error)
	Get(ctx context.Context, id uint) (*Business, error)
	List(ctx context.Context) ([]*Business, error)
	Activate(ctx context.Context, id uint) error
	Deactivate(ctx context.Context, id uint) error
	AssignCustomNumber(ctx context.Context, id uint, number string) (*Business, error)
}

// VerificationService defines the send/check verification flow
type VerificationService interface {
	SendCode(ctx context.Context, businessID uint, phone, channel string) (*SendCodeResult, error)
	CheckCode(ctx context.Context, businessID uint, phone, code string) (*CheckCodeResult, error)
}

// MessagingService defines outbound sends and inbound webhook processing
type MessagingService interface {
	Send(ctx context.Context, businessID uint, to, body string) (*Message, error)
	Receive(ctx context.Context, inbound *InboundMessage) (*Message, error)
}
