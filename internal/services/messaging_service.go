package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/almog-gaya/nextprop-sub005/domain"
	"github.com/almog-gaya/nextprop-sub005/internal/phone"
)

// MessagingServiceImpl implements domain.MessagingService
type MessagingServiceImpl struct {
	provider      domain.MessageProvider
	businessRepo  domain.BusinessRepository
	conversations domain.ConversationStore
	guard         domain.ReplayGuard
	logger        *logrus.Logger
	config        MessagingConfig
}

type MessagingConfig struct {
	// DefaultBusinessID receives inbound messages whose recipient number
	// matches no business. Zero disables the fallback.
	DefaultBusinessID uint
	DedupeTTL         time.Duration
}

// NewMessagingService creates a new messaging service
func NewMessagingService(
	provider domain.MessageProvider,
	businessRepo domain.BusinessRepository,
	conversations domain.ConversationStore,
	guard domain.ReplayGuard,
	logger *logrus.Logger,
	config MessagingConfig,
) domain.MessagingService {
	return &MessagingServiceImpl{
		provider:      provider,
		businessRepo:  businessRepo,
		conversations: conversations,
		guard:         guard,
		logger:        logger,
		config:        config,
	}
}

// Send implements domain.MessagingService
func (s *MessagingServiceImpl) Send(ctx context.Context, businessID uint, to, body string) (*domain.Message, error) {
	if err := phone.ValidateE164(to); err != nil {
		return nil, err
	}

	business, err := s.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	sid, status, err := s.provider.Send(ctx, business.SenderNumber(), to, body)
	if err != nil {
		return nil, err
	}

	message, err := s.conversations.RecordMessage(ctx, business.ID, to, domain.DirectionOutbound, body, sid, status)
	if err != nil {
		return nil, fmt.Errorf("message sent but not recorded: %w", err)
	}

	return message, nil
}

// Receive implements domain.MessagingService. Idempotent on the provider
// message SID: the conversation store short-circuits duplicates, and the
// replay guard flags them early for observability.
func (s *MessagingServiceImpl) Receive(ctx context.Context, inbound *domain.InboundMessage) (*domain.Message, error) {
	if inbound.ProviderSID == "" || inbound.From == "" || inbound.To == "" {
		return nil, fmt.Errorf("%w: inbound payload missing sender, recipient, or message sid", domain.ErrInvalidPhoneNumber)
	}

	if first, err := s.guard.FirstSeen(ctx, "sms:sid:"+inbound.ProviderSID, s.config.DedupeTTL); err == nil && !first {
		s.logger.WithFields(logrus.Fields{
			"provider_sid": inbound.ProviderSID,
			"from":         inbound.From,
		}).Info("duplicate webhook delivery")
	}

	business, err := s.resolveRecipient(ctx, inbound.To)
	if err != nil {
		return nil, err
	}

	message, err := s.conversations.RecordMessage(ctx, business.ID, inbound.From, domain.DirectionInbound, inbound.Body, inbound.ProviderSID, "received")
	if err != nil {
		return nil, fmt.Errorf("failed to record inbound message: %w", err)
	}

	return message, nil
}

// resolveRecipient maps an inbound destination number to its owning business.
// Order: exact custom-number match, exact phone match, configured default.
func (s *MessagingServiceImpl) resolveRecipient(ctx context.Context, to string) (*domain.Business, error) {
	if business, err := s.businessRepo.FindByCustomNumber(ctx, to); err == nil {
		return business, nil
	} else if err != domain.ErrBusinessNotFound {
		return nil, err
	}

	if business, err := s.businessRepo.FindByPhone(ctx, to); err == nil {
		return business, nil
	} else if err != domain.ErrBusinessNotFound {
		return nil, err
	}

	if s.config.DefaultBusinessID != 0 {
		business, err := s.businessRepo.FindByID(ctx, s.config.DefaultBusinessID)
		if err == nil {
			s.logger.WithFields(logrus.Fields{
				"to":          to,
				"business_id": business.ID,
			}).Warn("inbound number matched no business, routed to default")
			return business, nil
		}
		if err != domain.ErrBusinessNotFound {
			return nil, err
		}
	}

	return nil, domain.ErrUnknownRecipient
}
