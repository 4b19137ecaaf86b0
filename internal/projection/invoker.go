package projection

import (
	"context"
	"errors"

	"github.com/whiffcast/whiffcast/internal/ctxlog"
)

// Invoke runs a single projection through the engine. Engine failures are
// contained here: they are logged once at error level and reported as a nil
// result, never propagated to the caller. The one exception is context
// cancellation, which is passed through so the top level can tell a
// user-initiated interrupt apart from an engine fault.
func Invoke(ctx context.Context, engine Engine, req Request) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Invoking projection engine.",
		"pitcher", req.Pitcher,
		"opponent", req.Opponent,
		"park", req.Park,
	)

	result, err := engine.Project(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		logger.Error("Prediction failed", "error", err)
		return nil, nil
	}

	if result != nil {
		logger.Debug("Projection engine returned a result.", "mean", result.Mean)
	}
	return result, nil
}
