package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/digitalocean/lead-callback/pkg/clients/retell"
	"github.com/digitalocean/lead-callback/pkg/config"
	"github.com/digitalocean/lead-callback/pkg/models"
	"github.com/digitalocean/lead-callback/pkg/utils"
)

var (
	ErrPhoneRequired  = errors.New("phone number is required")
	ErrPhoneInvalid   = errors.New("phone number must contain digits")
	ErrInvalidPayload = errors.New("invalid call payload")
)

const (
	DefaultCaseType   = "general inquiry"
	DefaultLeadSource = "website"
)

// CallbackService defines the interface for turning a lead into an outbound call
type CallbackService interface {
	BuildPayload(lead models.LeadRequest) (models.CallPayload, error)
	RequestCallback(ctx context.Context, lead models.LeadRequest) (*models.CallResult, error)
}

type callbackServiceImpl struct {
	retellClient retell.Client
	config       *config.Config
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewCallbackService creates a new callback service
func NewCallbackService(retellClient retell.Client, config *config.Config, logger *zap.Logger) CallbackService {
	return &callbackServiceImpl{
		retellClient: retellClient,
		config:       config,
		validate:     validator.New(),
		logger:       logger.Named("callback"),
	}
}

// BuildPayload validates the lead's phone and assembles the create-phone-call body
func (s *callbackServiceImpl) BuildPayload(lead models.LeadRequest) (models.CallPayload, error) {
	phone := lead.PhoneValue()
	if phone == "" {
		return models.CallPayload{}, ErrPhoneRequired
	}

	toNumber := phone
	if s.config.NormalizePhone {
		toNumber = utils.NormalizePhone(phone)
		if toNumber == "" {
			return models.CallPayload{}, ErrPhoneInvalid
		}
	}

	payload := models.CallPayload{
		FromNumber: s.config.RetellFromNumber,
		ToNumber:   toNumber,
	}

	if s.config.AgentIDField == config.AgentFieldAgentID {
		payload.AgentID = s.config.RetellAgentID
	} else {
		payload.OverrideAgentID = s.config.RetellAgentID
	}

	if s.config.AttachMetadata {
		payload.Metadata = map[string]interface{}{
			"landing_page": valueOrNil(lead.LandingPage),
			"case_type":    valueOrNil(lead.CaseType),
			"utm_source":   valueOrNil(lead.UTMSource),
			"utm_campaign": valueOrNil(lead.UTMCampaign),
		}
	}

	if s.config.AttachDynamicVariables {
		payload.DynamicVariables = map[string]string{
			"lead_name":   lead.Name,
			"case_type":   firstNonEmpty(lead.CaseType, DefaultCaseType),
			"lead_source": firstNonEmpty(lead.LandingPage, lead.UTMSource, DefaultLeadSource),
			"campaign":    lead.UTMCampaign,
		}
	}

	if err := s.validate.Struct(payload); err != nil {
		return models.CallPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return payload, nil
}

// RequestCallback places a single call for the lead; failures are returned, never retried
func (s *callbackServiceImpl) RequestCallback(ctx context.Context, lead models.LeadRequest) (*models.CallResult, error) {
	payload, err := s.BuildPayload(lead)
	if err != nil {
		return nil, err
	}

	phoneHash := utils.PhoneFingerprint(payload.ToNumber)
	s.logger.Debug("Dispatching call", zap.String("phone_hash", phoneHash))

	result, err := s.retellClient.CreatePhoneCall(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Call initiated",
		zap.String("phone_hash", phoneHash),
		zap.Int("provider_status", result.StatusCode),
	)
	return result, nil
}

// valueOrNil keeps absent metadata fields as JSON null
func valueOrNil(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
