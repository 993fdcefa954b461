package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// WebhookURLEnv is the legacy variable that overrides the configured webhook URL
const WebhookURLEnv = "SLACK_WEBHOOK_URL"

// Environment is an injected view of process environment variables
type Environment map[string]string

// OSEnvironment snapshots the current process environment
func OSEnvironment() Environment {
	return Environment(env.ToMap(os.Environ()))
}

// environ lists the variables slacks reads. Empty values count as unset.
type environ struct {
	Home       string `env:"HOME"`
	WebhookURL string `env:"SLACK_WEBHOOK_URL"`
}

// parseEnviron decodes the variables from e only, never from the process
func parseEnviron(e Environment) (environ, error) {
	if e == nil {
		e = Environment{}
	}

	var out environ
	if err := env.ParseWithOptions(&out, env.Options{Environment: e}); err != nil {
		return environ{}, fmt.Errorf("error reading environment: %w", err)
	}
	return out, nil
}
