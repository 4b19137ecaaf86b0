package projection

import (
	"fmt"
	"strconv"
	"strings"
)

// NoProjectionMessage is printed when the engine produced nothing usable.
const NoProjectionMessage = "⚠️ No projection available"

// unknownLineup is the placeholder for a result without lineup provenance.
const unknownLineup = "Lineup source unknown"

// Format renders a projection for display. It is total over the optional
// fields: anything the engine left out is shown as a literal placeholder
// rather than an error.
func Format(result *Result) string {
	if result == nil {
		return NoProjectionMessage
	}

	lines := []string{
		fmt.Sprintf("\n=== %s vs %s ===", result.Pitcher, result.Opponent),
		fmt.Sprintf("Projected Ks: %.1f", result.Mean),
		fmt.Sprintf("Vegas Line: %s", optionalNumber(result.VegasLine)),
		fmt.Sprintf("Edge: %s", optionalNumber(result.Edge)),
		fmt.Sprintf("Over 6.5 Probability: %.1f%%", orZero(result.ProbOver65)),
		fmt.Sprintf("Key Stats: %s", orUnknown(result.LineupSource)),
	}
	return strings.Join(lines, "\n")
}

// optionalNumber renders a market value in its shortest decimal form, or the
// literal "N/A" when the engine had none.
func optionalNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func orUnknown(source string) string {
	if source == "" {
		return unknownLineup
	}
	return source
}
