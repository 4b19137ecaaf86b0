package projection

import "context"

// Request identifies a single projection: which pitcher, against which
// opponent, and optionally at which ballpark.
type Request struct {
	Pitcher  string
	Opponent string
	Park     string
}

// Result is a single projection as reported by the engine. Pitcher, Opponent
// and Mean are always present. The remaining fields are only populated when
// the engine had market data or a confirmed lineup to work from; absent
// values stay nil (or empty) so the formatter can substitute its defaults.
type Result struct {
	Pitcher  string
	Opponent string
	Mean     float64

	VegasLine    *float64
	Edge         *float64
	ProbOver65   *float64
	LineupSource string
}

// Engine is the external projection capability, the single integration point
// of this program. Implementations are expected to honor context
// cancellation; everything else about the engine (data sources, model,
// caching) is outside this repository.
type Engine interface {
	Project(ctx context.Context, req Request) (*Result, error)
}
