package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whiffcast/whiffcast/internal/app"
	"github.com/whiffcast/whiffcast/internal/config"
)

// Options wires the command tree to the rest of the application. NewEngine
// is injected so tests can run predictions against a deterministic double
// instead of the remote service.
type Options struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Loader    config.Loader
	NewEngine app.EngineFactory
}

// NewRootCommand builds the whiffcast command tree.
func NewRootCommand(opts Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "whiffcast",
		Short:         "MLB strikeout projections",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation: show help, exit cleanly.
			return cmd.Help()
		},
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	// Flag parse failures (unknown flags, malformed values) are usage
	// errors and must carry the usage exit code.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	root.AddCommand(newPredictCommand(opts))
	return root
}

// newPredictCommand builds the `predict` subcommand.
func newPredictCommand(opts Options) *cobra.Command {
	var (
		pitcher    string
		opponent   string
		park       string
		debug      bool
		logFormat  string
		logLevel   string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run strikeout projections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("CLI parser started.")

			// Required flags are validated here, before any settings or
			// engine work, so a usage error never touches the engine.
			var missing []string
			if pitcher == "" {
				missing = append(missing, `"--pitcher"`)
			}
			if opponent == "" {
				missing = append(missing, `"--opponent"`)
			}
			if len(missing) > 0 {
				_ = cmd.Usage()
				return &ExitError{
					Code:    2,
					Message: fmt.Sprintf("required flag(s) %s not set", strings.Join(missing, ", ")),
				}
			}

			logFormat = strings.ToLower(logFormat)
			if logFormat != "text" && logFormat != "json" {
				return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
			}
			logLevel = strings.ToLower(logLevel)
			switch logLevel {
			case "debug", "info", "warn", "error":
				// valid
			default:
				return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
			}
			if debug {
				logLevel = "debug"
			}
			slog.Debug("CLI parameter validation complete.")

			appConfig, err := app.NewConfig(app.Config{
				Pitcher:    pitcher,
				Opponent:   opponent,
				Park:       park,
				ConfigPath: configPath,
				LogFormat:  logFormat,
				LogLevel:   logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			application, err := app.NewApp(opts.Stdout, opts.Stderr, appConfig, opts.Loader, opts.NewEngine)
			if err != nil {
				return err
			}
			defer application.Close()

			return application.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&pitcher, "pitcher", "", `Pitcher full name (e.g. "Paul Skenes")`)
	cmd.Flags().StringVar(&opponent, "opponent", "", `Opponent team abbreviation (e.g. "PHI")`)
	cmd.Flags().StringVar(&park, "park", "", "Ballpark name (optional)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a whiffcast.hcl settings file.")

	return cmd
}
