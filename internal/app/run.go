package app

import (
	"context"
	"fmt"

	"github.com/whiffcast/whiffcast/internal/ctxlog"
	"github.com/whiffcast/whiffcast/internal/projection"
)

// Run executes a single prediction: invoke the engine, format the outcome,
// and print it. A contained engine failure still completes normally with the
// warning message; only context cancellation is reported back to the caller.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	req := projection.Request{
		Pitcher:  a.config.Pitcher,
		Opponent: a.config.Opponent,
		Park:     a.config.Park,
	}
	if req.Park == "" {
		req.Park = a.settings.Defaults.Park
	}

	result, err := projection.Invoke(ctx, a.engine, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.outW, projection.Format(result))
	a.logger.Debug("App.Run method finished.")
	return nil
}
