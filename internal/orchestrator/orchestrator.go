package orchestrator

import (
	"context"
	"fmt"

	"slacks-cli/internal/config"
	"slacks-cli/internal/interfaces"
	"slacks-cli/internal/logger"
	"slacks-cli/internal/validate"
	"slacks-cli/pkg/models"
)

// Orchestrator coordinates configuration, message input and delivery
type Orchestrator struct {
	configManager *config.Manager
	messages      *MessageSource
	poster        interfaces.Poster
	log           *logger.Logger
}

// New creates a new orchestrator with all required components
func New(manager *config.Manager, messages *MessageSource, poster interfaces.Poster, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{
		configManager: manager,
		messages:      messages,
		poster:        poster,
		log:           log,
	}
}

// SendMessage resolves configuration, validates it and posts one message
func (o *Orchestrator) SendMessage(ctx context.Context, request *models.MessageRequest) error {
	if request == nil {
		return NewValidationError("request", nil, "request cannot be nil")
	}

	cfg := o.configManager.Resolve(request.Debug)
	o.log.Debug().Stringer("config", cfg).Msg("resolved configuration")
	o.log.Debug().
		Str("channel", request.Channel).
		Str("username", request.Username).
		Str("icon_emoji", request.IconEmoji).
		Bool("stdin", request.ReadStdin).
		Bool("clipboard", request.FromClipboard).
		Msg("arguments")

	if err := validate.WebhookURL(cfg.WebhookURL); err != nil {
		return NewFieldError(err)
	}

	payload, err := o.BuildPayload(cfg, request)
	if err != nil {
		return err
	}
	o.log.Debug().Interface("payload", payload).Msg("built payload")

	result, err := o.poster.Post(ctx, *cfg.WebhookURL, payload)
	if err != nil {
		return NewPostError(err)
	}
	o.log.Debug().Str("url", result.URL).Int("status", result.StatusCode).Msg("posted message")

	return nil
}

// BuildPayload applies flag overrides, validates the per-message fields and
// reads the message text
func (o *Orchestrator) BuildPayload(cfg interfaces.Config, request *models.MessageRequest) (interfaces.Payload, error) {
	effective, err := o.configManager.ApplyOverrides(cfg, config.Overrides{
		Channel:   request.Channel,
		Username:  request.Username,
		IconEmoji: request.IconEmoji,
	})
	if err != nil {
		return interfaces.Payload{}, NewConfigurationError("invalid flag overrides", err)
	}

	if err := o.configManager.Validate(effective); err != nil {
		return interfaces.Payload{}, NewFieldError(err)
	}

	text, err := o.messages.Read(request)
	if err != nil {
		return interfaces.Payload{}, err
	}

	return interfaces.Payload{
		Channel:   *effective.Channel,
		Username:  *effective.Username,
		IconEmoji: *effective.IconEmoji,
		Text:      text,
	}, nil
}

// ShowConfiguration returns the resolved configuration and its file path
func (o *Orchestrator) ShowConfiguration(debug bool) (interfaces.Config, string, error) {
	path, err := o.configManager.Path()
	if err != nil {
		return interfaces.Config{}, "", NewConfigurationError(fmt.Sprintf("cannot locate configuration: %v", err), err)
	}
	return o.configManager.Resolve(debug), path, nil
}
