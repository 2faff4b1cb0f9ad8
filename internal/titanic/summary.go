package titanic

import "steerage.maritimedata.org/internal/scoring"

// Summary holds the derived, read-only statistics for a loaded manifest.
// Accuracy is the heuristic's agreement rate against the historical
// Survived labels, as a percentage. It is nil for an empty manifest:
// the agreement rate of zero records is undefined, and we report it as
// absent rather than as a sentinel value.
type Summary struct {
	Total    int
	Survived int
	Deaths   int
	Accuracy *float64
}

// Summarize computes counts and the heuristic agreement rate in a single
// pass over the manifest.
func Summarize(passengers []Passenger) Summary {
	summary := Summary{Total: len(passengers)}

	matches := 0
	for _, p := range passengers {
		if p.Survived == 1 {
			summary.Survived++
		}

		verdict := scoring.Score(p.ScoringInput()).Survived
		if verdict == (p.Survived == 1) {
			matches++
		}
	}

	summary.Deaths = summary.Total - summary.Survived

	if summary.Total > 0 {
		accuracy := float64(matches) / float64(summary.Total) * 100
		summary.Accuracy = &accuracy
	}

	return summary
}
