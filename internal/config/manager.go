package config

import (
	"fmt"
	"strings"

	"dario.cat/mergo"
	"slacks-cli/internal/interfaces"
	"slacks-cli/internal/logger"
	"slacks-cli/internal/validate"
)

// Default values used when no configuration file exists
const (
	DefaultChannel   = "#general"
	DefaultUsername  = "slacks"
	DefaultIconEmoji = ":slack:"
)

// Overrides holds per-invocation flag values; empty strings are ignored
type Overrides struct {
	Channel   string
	Username  string
	IconEmoji string
}

// Manager resolves the effective configuration from defaults, the
// persisted file and the environment
type Manager struct {
	store interfaces.ConfigStore
	env   Environment
	log   *logger.Logger
}

// NewManager creates a new configuration manager
func NewManager(store interfaces.ConfigStore, env Environment, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		store: store,
		env:   env,
		log:   log,
	}
}

// Defaults returns the built-in configuration
func Defaults(debug bool) interfaces.Config {
	return interfaces.Config{
		WebhookURL: nil,
		Channel:    interfaces.StringPtr(DefaultChannel),
		Username:   interfaces.StringPtr(DefaultUsername),
		IconEmoji:  interfaces.StringPtr(DefaultIconEmoji),
		DebugMode:  debug,
	}
}

// Path returns the location of the persisted configuration
func (m *Manager) Path() (string, error) {
	return ResolvePath(m.env)
}

// Store returns the underlying configuration store
func (m *Manager) Store() interfaces.ConfigStore {
	return m.store
}

// LoadPersisted returns the defaults overlaid with the persisted record.
// Load failures are logged at debug level and leave the defaults in place.
func (m *Manager) LoadPersisted(debug bool) interfaces.Config {
	cfg := Defaults(debug)

	path, err := m.Path()
	if err != nil {
		m.log.Debug().Err(err).Msg("skipping config file")
		return cfg
	}

	loaded, err := m.store.Load(path)
	if err != nil {
		m.log.Debug().Err(err).Msg("Failed to load config file")
		return cfg
	}

	// The loaded record replaces every field, unset ones included
	cfg.WebhookURL = loaded.WebhookURL
	cfg.Channel = loaded.Channel
	cfg.Username = loaded.Username
	cfg.IconEmoji = loaded.IconEmoji
	m.log.Debug().Str("path", path).Stringer("config", cfg).Msg("loaded config file")

	return cfg
}

// Resolve applies precedence rules (env > config file > defaults). It never
// fails; any problem degrades to defaults plus overrides.
func (m *Manager) Resolve(debug bool) interfaces.Config {
	cfg := m.LoadPersisted(debug)

	vars, err := parseEnviron(m.env)
	if err != nil {
		m.log.Debug().Err(err).Msg("ignoring environment")
		return cfg
	}

	// SLACK_WEBHOOK_URL wins over the file for backward compatibility
	if vars.WebhookURL != "" {
		cfg.WebhookURL = interfaces.StringPtr(vars.WebhookURL)
		m.log.Debug().Str("env", WebhookURLEnv).Msg("webhook_url overridden by environment")
	}

	return cfg
}

// ApplyOverrides overlays non-empty flag values on a copy of cfg
func (m *Manager) ApplyOverrides(cfg interfaces.Config, overrides Overrides) (interfaces.Config, error) {
	merged := cfg.Clone()

	patch := interfaces.Config{
		Channel:   optional(overrides.Channel),
		Username:  optional(overrides.Username),
		IconEmoji: optional(overrides.IconEmoji),
	}

	if err := mergo.Merge(&merged, patch, mergo.WithOverride); err != nil {
		return interfaces.Config{}, fmt.Errorf("failed to apply flag overrides: %w", err)
	}

	return merged, nil
}

// Validate checks every field needed to send a message, in display order
func (m *Manager) Validate(cfg interfaces.Config) error {
	checks := []struct {
		value     *string
		validator validate.Validator
	}{
		{cfg.WebhookURL, validate.WebhookURL},
		{cfg.Channel, validate.Channel},
		{cfg.Username, validate.Username},
		{cfg.IconEmoji, validate.IconEmoji},
	}

	for _, check := range checks {
		if err := check.validator(check.value); err != nil {
			return err
		}
	}

	return nil
}

// optional trims s and returns nil when nothing is left
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
