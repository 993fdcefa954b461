package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"slacks-cli/internal/app"
	"slacks-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

// stdinArg marks the positional argument that reads the message from STDIN
const stdinArg = "-"

var rootCmd = &cobra.Command{
	Use:   "slacks [flags] (<message> | -)",
	Short: "Post a message to a Slack incoming webhook",
	Long: `slacks posts a message to a Slack channel through an incoming webhook.

The message is the positional argument, or STDIN when the argument is '-',
or the clipboard with --clipboard. Channel, username and icon default to the
values saved by 'slacks --configure' and can be overridden per message.

Environment Variables:
  SLACK_WEBHOOK_URL   Incoming Webhook URL. Overrides the configured URL. (deprecated)`,
	Example: `  slacks "deploy finished"
  echo "build failed" | slacks -c '#ci' -i ':x:' -
  slacks --configure`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check if version flag is set
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			versionCmd.Run(cmd, args)
			return nil
		}

		if configure, _ := cmd.Flags().GetBool("configure"); configure {
			return configureCmd.RunE(cmd, args)
		}

		request, err := buildRequestFromFlags(cmd, args)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Run(cmd.Context(), app.DefaultDeps(), request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slacks version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure the webhook URL and message defaults",
	Long: "Interactively set the webhook URL, default channel, username and icon emoji. " +
		"Press Enter to keep the value shown in brackets. Settings are saved to ~/.config/slacks.json.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		return app.Configure(app.DefaultDeps(), debug)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long:  "Print the configuration slacks would use, after applying the saved file and SLACK_WEBHOOK_URL.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		return app.Show(app.DefaultDeps(), debug)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(showCmd)

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "show debug messages")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "print version information")

	// Main command flags
	rootCmd.Flags().StringP("username", "u", "", "set username (default: configured or slacks)")
	rootCmd.Flags().StringP("icon", "i", "", "set icon emoji (default: configured or :slack:)")
	rootCmd.Flags().StringP("channel", "c", "", "set posting channel (default: configured or #general)")
	rootCmd.Flags().Bool("configure", false, "do configuration for your Slack")
	rootCmd.Flags().BoolP("clipboard", "b", false, "append clipboard content to the message (or use it as the message)")
}

// buildRequestFromFlags constructs a MessageRequest from command flags and arguments
func buildRequestFromFlags(cmd *cobra.Command, args []string) (*models.MessageRequest, error) {
	request := models.NewMessageRequest()

	// Get message from positional argument
	if len(args) > 0 {
		if args[0] == stdinArg {
			request.ReadStdin = true
		} else {
			request.Text = args[0]
		}
	}

	var err error

	if request.Username, err = cmd.Flags().GetString("username"); err != nil {
		return nil, fmt.Errorf("invalid username flag: %w", err)
	}

	if request.IconEmoji, err = cmd.Flags().GetString("icon"); err != nil {
		return nil, fmt.Errorf("invalid icon flag: %w", err)
	}

	if request.Channel, err = cmd.Flags().GetString("channel"); err != nil {
		return nil, fmt.Errorf("invalid channel flag: %w", err)
	}

	if request.Debug, err = cmd.Flags().GetBool("debug"); err != nil {
		return nil, fmt.Errorf("invalid debug flag: %w", err)
	}

	if request.FromClipboard, err = cmd.Flags().GetBool("clipboard"); err != nil {
		return nil, fmt.Errorf("invalid clipboard flag: %w", err)
	}

	// Validate that STDIN and clipboard are not combined
	if request.ReadStdin && request.FromClipboard {
		return nil, errors.New("cannot read the message from both STDIN and --clipboard")
	}

	if len(args) == 0 && !request.FromClipboard {
		return nil, errors.New("a message, '-' or --clipboard is required")
	}

	if !request.ReadStdin && !request.FromClipboard && request.Text == "" {
		return nil, errors.New("Empty message")
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
