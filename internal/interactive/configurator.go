package interactive

import (
	"fmt"

	"slacks-cli/internal/config"
	"slacks-cli/internal/interfaces"
	"slacks-cli/internal/logger"
	"slacks-cli/internal/validate"
)

// field describes one prompted configuration value
type field struct {
	description string
	validator   validate.Validator
	current     func(cfg interfaces.Config) *string
}

// Fields are prompted in this order
var fields = []field{
	{
		description: "Slack Webhook URL",
		validator:   validate.WebhookURL,
		current:     func(cfg interfaces.Config) *string { return cfg.WebhookURL },
	},
	{
		description: "Default Channel",
		validator:   validate.Channel,
		current:     func(cfg interfaces.Config) *string { return cfg.Channel },
	},
	{
		description: "Default Username",
		validator:   validate.Username,
		current:     func(cfg interfaces.Config) *string { return cfg.Username },
	},
	{
		description: "Default Icon Emoji",
		validator:   validate.IconEmoji,
		current:     func(cfg interfaces.Config) *string { return cfg.IconEmoji },
	},
}

// Configurator walks the user through every setting and persists the result
type Configurator struct {
	manager *config.Manager
	console interfaces.Console
	log     *logger.Logger
}

// NewConfigurator creates a configurator reading answers from console
func NewConfigurator(manager *config.Manager, console interfaces.Console, log *logger.Logger) *Configurator {
	if log == nil {
		log = logger.Nop()
	}
	return &Configurator{
		manager: manager,
		console: console,
		log:     log,
	}
}

// Run prompts for each field, saves the new configuration and returns its
// path. Save failures and a missing HOME are returned as errors.
func (c *Configurator) Run(debug bool) (string, error) {
	path, err := c.manager.Path()
	if err != nil {
		return "", err
	}

	// Persisted values only seed the prompt defaults
	current := c.manager.LoadPersisted(debug)

	answers := make([]*string, len(fields))
	for i, f := range fields {
		answer, err := c.askField(f, f.current(current))
		if err != nil {
			return "", fmt.Errorf("failed to configure %s: %w", f.description, err)
		}
		answers[i] = &answer
	}

	newConfig := interfaces.Config{
		WebhookURL: answers[0],
		Channel:    answers[1],
		Username:   answers[2],
		IconEmoji:  answers[3],
		DebugMode:  false,
	}

	if err := c.manager.Store().Save(newConfig, path); err != nil {
		return "", err
	}

	if debug {
		if err := c.console.Println(fmt.Sprintf("Saved: %s", newConfig)); err != nil {
			return "", err
		}
	}
	if err := c.console.Println(fmt.Sprintf("Saved your configuration: %s", path)); err != nil {
		return "", err
	}

	return path, nil
}

// askField repeats the prompt until the validator accepts the answer.
// An empty answer keeps the current value when there is one.
func (c *Configurator) askField(f field, current *string) (string, error) {
	for attempt := 1; ; attempt++ {
		input, err := c.console.Prompt(f.description, current)
		if err != nil {
			return "", err
		}

		candidate := input
		if candidate == "" && current != nil {
			candidate = *current
		}

		if err := f.validator(&candidate); err != nil {
			c.log.Debug().Int("attempt", attempt).Err(err).Msg("answer rejected")
			if werr := c.console.Warn(err.Error()); werr != nil {
				return "", werr
			}
			continue
		}

		return candidate, nil
	}
}
