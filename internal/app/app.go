package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"slacks-cli/internal/config"
	"slacks-cli/internal/interactive"
	"slacks-cli/internal/interfaces"
	"slacks-cli/internal/logger"
	"slacks-cli/internal/orchestrator"
	"slacks-cli/internal/webhook"
	"slacks-cli/pkg/models"
)

// Deps holds the process-level collaborators. Tests swap them for fakes.
type Deps struct {
	Env       config.Environment
	Store     interfaces.ConfigStore
	Poster    interfaces.Poster
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Console   interfaces.Console
	Clipboard orchestrator.ClipboardReader
}

// DefaultDeps wires the real environment, filesystem, terminal and HTTP client
func DefaultDeps() Deps {
	return Deps{
		Env:       config.OSEnvironment(),
		Store:     config.NewOSStore(),
		Poster:    webhook.NewClient(webhook.DefaultTimeout),
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Console:   interactive.NewConsole(os.Stdin, os.Stdout),
		Clipboard: orchestrator.SystemClipboard,
	}
}

// Run sends the message described by request
func Run(ctx context.Context, deps Deps, request *models.MessageRequest) error {
	log := logger.New(deps.Stderr, request.Debug)
	manager := config.NewManager(deps.Store, deps.Env, log)
	messages := orchestrator.NewMessageSource(deps.Stdin, deps.Clipboard)

	orch := orchestrator.New(manager, messages, deps.Poster, log)
	if err := orch.SendMessage(ctx, request); err != nil {
		return orchestrator.RecoverFromError(err)
	}

	return nil
}

// Configure runs the interactive configurator and persists the answers
func Configure(deps Deps, debug bool) error {
	log := logger.New(deps.Stderr, debug)
	manager := config.NewManager(deps.Store, deps.Env, log)

	configurator := interactive.NewConfigurator(manager, deps.Console, log)
	if _, err := configurator.Run(debug); err != nil {
		return orchestrator.RecoverFromError(err)
	}

	return nil
}

// Show prints the resolved configuration and where it is stored
func Show(deps Deps, debug bool) error {
	log := logger.New(deps.Stderr, debug)
	manager := config.NewManager(deps.Store, deps.Env, log)
	orch := orchestrator.New(manager, nil, deps.Poster, log)

	cfg, path, err := orch.ShowConfiguration(debug)
	if err != nil {
		return err
	}

	// Display path with ~ for home directory
	fmt.Fprintf(deps.Stdout, "Config file: %s\n\n", contractPath(path, deps.Env["HOME"]))
	fmt.Fprintf(deps.Stdout, "webhook_url: %s\n", interfaces.Display(cfg.WebhookURL))
	fmt.Fprintf(deps.Stdout, "channel:     %s\n", interfaces.Display(cfg.Channel))
	fmt.Fprintf(deps.Stdout, "username:    %s\n", interfaces.Display(cfg.Username))
	fmt.Fprintf(deps.Stdout, "icon_emoji:  %s\n", interfaces.Display(cfg.IconEmoji))

	if deps.Env[config.WebhookURLEnv] != "" {
		fmt.Fprintf(deps.Stdout, "\nwebhook_url is overridden by %s\n", config.WebhookURLEnv)
	}

	if err := manager.Validate(cfg); err != nil {
		fmt.Fprintf(deps.Stdout, "\nNot ready to send: %v\n", err)
	}

	return nil
}

// contractPath converts a full path back to use ~ for the home directory
func contractPath(path, home string) string {
	if home == "" {
		return path
	}

	homeWithSlash := home + string(os.PathSeparator)
	if len(path) > len(homeWithSlash) && path[:len(homeWithSlash)] == homeWithSlash {
		return "~" + path[len(home):]
	}

	return path
}
