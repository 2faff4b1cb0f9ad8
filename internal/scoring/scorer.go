// Package scoring implements the fixed-weight survival heuristic. The
// weights are hand-picked constants, not a trained model; changing them
// changes the published agreement rate, so they are part of the contract.
package scoring

import "math"

const (
	defaultAge  = 30
	defaultFare = 15
)

// Input holds the attributes of a (possibly hypothetical) passenger.
// Age and Fare are nil when the attribute is absent; the scorer
// substitutes the historical defaults (30 years, 15 fare units) before
// applying the corresponding rule. SibSp and Parch are float64 so that a
// malformed form value can flow through as NaN, which fails every
// threshold comparison and silently skips the family rule.
type Input struct {
	Pclass   int
	Sex      string
	Age      *float64
	SibSp    float64
	Parch    float64
	Fare     *float64
	Embarked string // accepted for completeness; does not affect the score
}

// Result is the outcome of scoring a single Input.
type Result struct {
	Probability float64
	Survived    bool
}

// Score maps a passenger attribute set to a survival probability in [0, 1]
// and a verdict (probability strictly greater than 0.5). It is pure and
// total: no input can make it fail, and NaN attribute values simply leave
// the affected rule's contribution at zero.
func Score(in Input) Result {
	score := 0.5

	if in.Sex == "female" {
		score += 0.35
	} else {
		score -= 0.25
	}

	switch in.Pclass {
	case 1:
		score += 0.20
	case 2:
		score += 0.05
	default:
		score -= 0.15
	}

	age := float64(defaultAge)
	if in.Age != nil {
		age = *in.Age
	}
	if age < 16 {
		score += 0.10
	} else if age > 60 {
		score -= 0.10
	}

	family := in.SibSp + in.Parch
	if family > 0 && family < 4 {
		score += 0.05
	} else if family >= 4 {
		score -= 0.10
	}

	fare := float64(defaultFare)
	if in.Fare != nil {
		fare = *in.Fare
	}
	if fare > 50 {
		score += 0.10
	} else if fare < 10 {
		score -= 0.05
	}

	probability := math.Min(1, math.Max(0, score))

	return Result{
		Probability: probability,
		Survived:    probability > 0.5,
	}
}
