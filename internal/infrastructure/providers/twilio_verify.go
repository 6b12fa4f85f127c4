package providers

import (
	"context"

	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"

	"github.com/almog-gaya/nextprop-sub005/domain"
)

// TwilioVerifyProvider implements domain.VerifyProvider on Twilio Verify V2
type TwilioVerifyProvider struct {
	client *twilio.RestClient
}

// NewTwilioVerifyProvider creates a new Twilio Verify provider
func NewTwilioVerifyProvider(client *twilio.RestClient) domain.VerifyProvider {
	return &TwilioVerifyProvider{client: client}
}

// CreateService provisions a Verify service scoped to one business.
// The SDK does not take a context; the shared client enforces the
// configured request timeout.
func (p *TwilioVerifyProvider) CreateService(_ context.Context, friendlyName string) (string, error) {
	params := &verify.CreateServiceParams{}
	params.SetFriendlyName(friendlyName)

	svc, err := p.client.VerifyV2.CreateService(params)
	if err != nil {
		return "", providerError("verify.create_service", err)
	}

	return deref(svc.Sid), nil
}

// SendCode asks the provider to deliver a one-time code over the given channel
func (p *TwilioVerifyProvider) SendCode(_ context.Context, serviceSID, phone, channel string) (string, string, error) {
	params := &verify.CreateVerificationParams{}
	params.SetTo(phone)
	params.SetChannel(channel)

	v, err := p.client.VerifyV2.CreateVerification(serviceSID, params)
	if err != nil {
		return "", "", providerError("verify.send_code", err)
	}

	return deref(v.Sid), deref(v.Status), nil
}

// CheckCode submits a code; valid mirrors the provider's "approved" verdict
func (p *TwilioVerifyProvider) CheckCode(_ context.Context, serviceSID, phone, code string) (string, bool, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(phone)
	params.SetCode(code)

	check, err := p.client.VerifyV2.CreateVerificationCheck(serviceSID, params)
	if err != nil {
		return "", false, providerError("verify.check_code", err)
	}

	status := deref(check.Status)
	return status, status == "approved", nil
}
