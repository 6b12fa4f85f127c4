package providers

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// TwilioMessageProvider implements domain.MessageProvider on Programmable Messaging
type TwilioMessageProvider struct {
	client *twilio.RestClient
}

// NewTwilioMessageProvider creates a new Twilio messaging provider
func NewTwilioMessageProvider(client *twilio.RestClient) domain.MessageProvider {
	return &TwilioMessageProvider{client: client}
}

// Send submits one outbound SMS and returns the provider message SID and status
func (p *TwilioMessageProvider) Send(_ context.Context, from, to, body string) (string, string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)

	msg, err := p.client.Api.CreateMessage(params)
	if err != nil {
		return "", "", providerError("messaging.send", err)
	}

	return deref(msg.Sid), deref(msg.Status), nil
}
