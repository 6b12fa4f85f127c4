package domain

import (
	"errors"
	"fmt"
)

// Business registry errors
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrBusinessExists   = errors.New("an active business already uses this phone number")
)

// Verification errors
var (
	ErrAttemptNotFound = errors.New("no verification attempt for this phone number")
	ErrInvalidChannel  = errors.New("channel must be sms or voice")
	ErrResendThrottled = errors.New("verification code recently sent, wait before resending")
)

// Messaging errors
var (
	ErrInvalidPhoneNumber   = errors.New("phone number must be in E.164 format")
	ErrUnknownRecipient     = errors.New("no business owns the recipient number")
	ErrConversationNotFound = errors.New("conversation not found")
)

// Twilio error codes surfaced as distinct, user-actionable kinds
const (
	ProviderCodeInvalidDestination = 21211
	ProviderCodeTrialUnverified    = 21608
)

// ProviderError wraps a non-success response from an upstream provider.
// Code is the provider-specific error code, Status the upstream HTTP status.
type ProviderError struct {
	Op      string
	Code    int
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider error %d (status %d): %s", e.Op, e.Code, e.Status, e.Message)
}

// IsInvalidDestination reports whether the provider rejected the destination number
func (e *ProviderError) IsInvalidDestination() bool {
	return e.Code == ProviderCodeInvalidDestination
}

// IsTrialRestriction reports whether the destination is unverified under a trial account
func (e *ProviderError) IsTrialRestriction() bool {
	return e.Code == ProviderCodeTrialUnverified
}

// AsProviderError unwraps err into a *ProviderError if there is one in the chain
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
