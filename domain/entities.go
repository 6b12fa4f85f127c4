package domain

import "time"

// Verification channels accepted by the verification provider
const (
	ChannelSMS   = "sms"
	ChannelVoice = "voice"
)

// Message directions
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Business represents a tenant that owns a phone number and messaging configuration
type Business struct {
	ID               uint
	Name             string
	ContactEmail     string
	Phone            string
	VerifyServiceSID string
	UseCustomNumber  bool
	CustomNumber     string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SenderNumber returns the number outbound messages are sent from
func (b *Business) SenderNumber() string {
	if b.UseCustomNumber && b.CustomNumber != "" {
		return b.CustomNumber
	}
	return b.Phone
}

// VerificationAttempt records one outbound verification code delivery.
// Immutable after creation; a resend creates a new attempt.
type VerificationAttempt struct {
	ID             uint
	BusinessID     uint
	Phone          string
	Channel        string
	ProviderStatus string
	ProviderSID    string
	CreatedAt      time.Time
}

// VerificationCheck records one code-check outcome. Immutable.
type VerificationCheck struct {
	ID             uint
	AttemptID      uint
	BusinessID     uint
	Phone          string
	Code           string
	ProviderStatus string
	Success        bool
	CreatedAt      time.Time
}

// Conversation groups messages between a business and one contact number
type Conversation struct {
	ID              uint
	BusinessID      uint
	ContactNumber   string
	LastMessageBody string
	LastMessageAt   time.Time
	UnreadCount     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Message is a single inbound or outbound text. Immutable once stored.
type Message struct {
	ID             uint
	ConversationID uint
	Direction      string
	Body           string
	ProviderSID    string
	Status         string
	CreatedAt      time.Time
}

// InboundMessage is the payload extracted from a provider webhook delivery
type InboundMessage struct {
	From        string
	To          string
	Body        string
	ProviderSID string
}

// SendCodeResult is the outcome of a verification code send
type SendCodeResult struct {
	Attempt *VerificationAttempt
	Status  string
}

// CheckCodeResult is the outcome of a verification code check
type CheckCodeResult struct {
	Check *VerificationCheck
	Valid bool
}
