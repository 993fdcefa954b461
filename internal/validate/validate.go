// Package validate holds the field predicates shared by the configurator
// and the send path.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// MaxNameLength bounds channel and username values
const MaxNameLength = 20

// WebhookHost is the only host accepted for webhook URLs
const WebhookHost = "hooks.slack.com"

var (
	webhookURLPattern = regexp.MustCompile(`^https://` + regexp.QuoteMeta(WebhookHost) + `/([A-Za-z0-9]+/?)+$`)
	iconEmojiPattern  = regexp.MustCompile(`^:[a-z0-9\-_+]+:$`)
)

// ErrInvalid matches every ValidationError via errors.Is
var ErrInvalid = errors.New("invalid value")

// Reason classifies why a value was rejected
type Reason int

const (
	Unset Reason = iota + 1
	Empty
	TooLong
	InvalidFormat
)

func (r Reason) String() string {
	switch r {
	case Unset:
		return "not set"
	case Empty:
		return "empty"
	case TooLong:
		return "too long"
	case InvalidFormat:
		return "invalid format"
	default:
		return "unknown"
	}
}

// Field names used in messages and in the persisted file
const (
	FieldWebhookURL = "webhook_url"
	FieldChannel    = "channel"
	FieldUsername   = "username"
	FieldIconEmoji  = "icon_emoji"
)

// ValidationError reports a rejected field value
type ValidationError struct {
	Field  string
	Reason Reason
	Hint   string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s is %s", e.Field, e.Reason)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Is lets errors.Is(err, ErrInvalid) match any validation failure
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Validator checks one optional field value
type Validator func(value *string) error

// WebhookURL requires an https://hooks.slack.com/... URL with alphanumeric path segments
func WebhookURL(value *string) error {
	if value == nil {
		return &ValidationError{Field: FieldWebhookURL, Reason: Unset}
	}
	if !webhookURLPattern.MatchString(*value) {
		return &ValidationError{Field: FieldWebhookURL, Reason: InvalidFormat}
	}
	return nil
}

// Channel accepts #channel, plain names and @user handles up to 20 characters
func Channel(value *string) error {
	return boundedName(FieldChannel, value)
}

// Username accepts any display name up to 20 characters
func Username(value *string) error {
	return boundedName(FieldUsername, value)
}

// IconEmoji requires an emoji code such as :robot_face:
func IconEmoji(value *string) error {
	switch {
	case value == nil:
		return &ValidationError{Field: FieldIconEmoji, Reason: Unset}
	case *value == "":
		return &ValidationError{Field: FieldIconEmoji, Reason: Empty}
	case !iconEmojiPattern.MatchString(*value):
		return &ValidationError{Field: FieldIconEmoji, Reason: InvalidFormat, Hint: "e.g. :robot_face:"}
	}
	return nil
}

func boundedName(field string, value *string) error {
	switch {
	case value == nil:
		return &ValidationError{Field: field, Reason: Unset}
	case *value == "":
		return &ValidationError{Field: field, Reason: Empty}
	case utf8.RuneCountInString(*value) > MaxNameLength:
		return &ValidationError{Field: field, Reason: TooLong}
	}
	return nil
}

// ReasonOf extracts the rejection reason from err, or 0 if err is not a ValidationError
func ReasonOf(err error) Reason {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason
	}
	return 0
}
