package providers

import (
	"time"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// NewTwilioClient builds the shared Twilio REST client with an explicit
// per-call timeout on the underlying HTTP client.
func NewTwilioClient(accountSID, authToken string, timeout time.Duration) *twilio.RestClient {
	base := &twclient.Client{
		Credentials: twclient.NewCredentials(accountSID, authToken),
	}
	base.SetTimeout(timeout)

	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
		Client:   base,
	})
}

// providerError converts an SDK error into a domain.ProviderError, keeping
// the Twilio error code and HTTP status when present.
func providerError(op string, err error) error {
	if restErr, ok := err.(*twclient.TwilioRestError); ok {
		return &domain.ProviderError{
			Op:      op,
			Code:    restErr.Code,
			Status:  restErr.Status,
			Message: restErr.Message,
		}
	}
	return &domain.ProviderError{Op: op, Message: err.Error()}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
