package interfaces

import (
	"fmt"
	"strings"
)

// Config represents the persisted and resolved slacks configuration
type Config struct {
	WebhookURL *string `json:"webhook_url" mapstructure:"webhook_url"`
	Channel    *string `json:"channel" mapstructure:"channel"`
	Username   *string `json:"username" mapstructure:"username"`
	IconEmoji  *string `json:"icon_emoji" mapstructure:"icon_emoji"`
	DebugMode  bool    `json:"debug_mode" mapstructure:"debug_mode"`
}

// Clone returns a deep copy so callers can modify the result without
// touching the strings the original points at
func (c Config) Clone() Config {
	return Config{
		WebhookURL: cloneString(c.WebhookURL),
		Channel:    cloneString(c.Channel),
		Username:   cloneString(c.Username),
		IconEmoji:  cloneString(c.IconEmoji),
		DebugMode:  c.DebugMode,
	}
}

// String renders the configuration for diagnostics, using None for unset values
func (c Config) String() string {
	fields := []string{
		"webhook_url: " + Display(c.WebhookURL),
		"channel: " + Display(c.Channel),
		"username: " + Display(c.Username),
		"icon_emoji: " + Display(c.IconEmoji),
		fmt.Sprintf("debug_mode: %t", c.DebugMode),
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// ConfigStore persists and restores configuration records
type ConfigStore interface {
	// Load reads a configuration record from path
	Load(path string) (Config, error)

	// Save writes the configuration record to path, creating parent directories
	Save(cfg Config, path string) error
}

// StringPtr returns a pointer to a copy of s
func StringPtr(s string) *string {
	return &s
}

// Display returns the value of s or "None" when it is unset
func Display(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
