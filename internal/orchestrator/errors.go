package orchestrator

import (
	"errors"
	"fmt"

	"slacks-cli/internal/config"
	"slacks-cli/internal/validate"
	"slacks-cli/internal/webhook"
)

// Error types for different categories of failures
var (
	ErrConfigurationInvalid = errors.New("configuration error")
	ErrValidationFailed     = errors.New("validation error")
	ErrInputFailed          = errors.New("input error")
	ErrPostFailed           = errors.New("post error")
)

// SlacksError represents a structured error with actionable guidance
type SlacksError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *SlacksError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s\n\nSuggestion: %s", e.Type, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *SlacksError) Unwrap() error {
	return e.Cause
}

// Is matches the error category as well as the wrapped cause
func (e *SlacksError) Is(target error) bool {
	return target == e.Type
}

// Error constructors with actionable guidance

func NewConfigurationError(message string, cause error) *SlacksError {
	guidance := "Run 'slacks --configure' to create ~/.config/slacks.json."

	switch {
	case errors.Is(cause, config.ErrHomeUnset):
		guidance = "Set the HOME environment variable so the configuration file can be located."
	case errors.Is(cause, config.ErrConfigSave):
		guidance = "Check that ~/.config exists or can be created and that you have write access to it."
	}

	return &SlacksError{
		Type:     ErrConfigurationInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewValidationError(field string, value interface{}, reason string) *SlacksError {
	message := reason
	if value != nil && value != "" {
		message = fmt.Sprintf("%s: %v", reason, value)
	}
	guidance := "Check the input value and ensure it meets the required format."

	switch field {
	case "message":
		guidance = "Pass the message as an argument, use '-' to read it from STDIN, " +
			"or use --clipboard."
	case validate.FieldWebhookURL:
		guidance = "Run 'slacks --configure' to set the webhook URL " +
			"(https://hooks.slack.com/services/...) or export " + config.WebhookURLEnv + "."
	case validate.FieldChannel:
		guidance = "Channel must be 1-20 characters, e.g. #general, general or @user. " +
			"Override it with -c or run 'slacks --configure'."
	case validate.FieldUsername:
		guidance = "Username must be 1-20 characters. Override it with -u or run 'slacks --configure'."
	case validate.FieldIconEmoji:
		guidance = "Icon must be an emoji code like :robot_face:. Override it with -i or run 'slacks --configure'."
	}

	return &SlacksError{
		Type:     ErrValidationFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    nil,
	}
}

// NewFieldError converts a validator failure into a user-facing error
func NewFieldError(err error) *SlacksError {
	var vErr *validate.ValidationError
	if !errors.As(err, &vErr) {
		return NewValidationError("", nil, err.Error())
	}

	e := NewValidationError(vErr.Field, nil, vErr.Error())
	e.Cause = err
	return e
}

func NewInputError(source string, cause error) *SlacksError {
	guidance := "Check that the message source is readable."

	switch source {
	case "stdin":
		guidance = "Pipe the message into slacks, e.g. echo hello | slacks -"
	case "clipboard":
		guidance = "Clipboard access failed or it is empty. Copy some text first " +
			"or pass the message as an argument."
	}

	return &SlacksError{
		Type:     ErrInputFailed,
		Message:  cause.Error(),
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewPostError(cause error) *SlacksError {
	guidance := "Check your network connection and that the webhook URL is reachable."

	if errors.Is(cause, webhook.ErrUnexpectedStatus) {
		guidance = "Slack rejected the request. Check that the webhook URL is still active " +
			"and that the channel exists."
	}

	return &SlacksError{
		Type:     ErrPostFailed,
		Message:  cause.Error(),
		Guidance: guidance,
		Cause:    cause,
	}
}

// RecoverFromError maps known failures to SlacksError so they carry guidance
func RecoverFromError(err error) error {
	if err == nil {
		return nil
	}

	var slacksErr *SlacksError
	if errors.As(err, &slacksErr) {
		return slacksErr
	}

	switch {
	case errors.Is(err, validate.ErrInvalid):
		return NewFieldError(err)
	case errors.Is(err, config.ErrHomeUnset), errors.Is(err, config.ErrConfigSave), errors.Is(err, config.ErrConfigLoad):
		return NewConfigurationError(err.Error(), err)
	case errors.Is(err, webhook.ErrUnexpectedStatus):
		return NewPostError(err)
	}

	return &SlacksError{
		Type:     errors.New("unknown error"),
		Message:  err.Error(),
		Guidance: "An unexpected error occurred. Run again with --debug for details.",
		Cause:    err,
	}
}
