package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/whiffcast/whiffcast/internal/cli"
	"github.com/whiffcast/whiffcast/internal/config"
	"github.com/whiffcast/whiffcast/internal/engineapi"
	"github.com/whiffcast/whiffcast/internal/hcl"
	"github.com/whiffcast/whiffcast/internal/projection"
)

// main is the entrypoint for the whiffcast application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		// A user-initiated interrupt is a normal outcome, not an error.
		fmt.Println("\nOperation cancelled by user")
	default:
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The default engine is the HTTP client for the remote projection
// service.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	root := cli.NewRootCommand(cli.Options{
		Stdout: outW,
		Stderr: errW,
		Loader: hcl.NewLoader(),
		NewEngine: func(settings config.EngineSettings) (projection.Engine, error) {
			return engineapi.NewClient(settings)
		},
	})
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
