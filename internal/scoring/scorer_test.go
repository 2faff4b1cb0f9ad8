package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestScoreThirdClassMaleScenario(t *testing.T) {
	// base 0.5, male -0.25, class 3 -0.15, age/family/fare neutral
	result := Score(Input{
		Pclass:   3,
		Sex:      "male",
		Age:      floatPtr(30),
		SibSp:    0,
		Parch:    0,
		Fare:     floatPtr(15),
		Embarked: "S",
	})

	assert.InDelta(t, 0.10, result.Probability, 1e-9)
	assert.False(t, result.Survived)
}

func TestScoreFirstClassGirlScenarioClampsToOne(t *testing.T) {
	// 0.5 +0.35 +0.20 +0.10 +0.05 +0.10 = 1.30, clamped to 1.0
	result := Score(Input{
		Pclass:   1,
		Sex:      "female",
		Age:      floatPtr(10),
		SibSp:    1,
		Parch:    1,
		Fare:     floatPtr(80),
		Embarked: "C",
	})

	assert.Equal(t, 1.0, result.Probability)
	assert.True(t, result.Survived)
}

func TestScoreProbabilityAlwaysInRange(t *testing.T) {
	inputs := []Input{
		{}, // wholly empty input
		{Pclass: 1, Sex: "female", Age: floatPtr(5), SibSp: 1, Parch: 1, Fare: floatPtr(500)},
		{Pclass: 3, Sex: "male", Age: floatPtr(70), SibSp: 5, Parch: 3, Fare: floatPtr(1)},
		{Pclass: -1, Sex: "unknown", Age: floatPtr(-10), Fare: floatPtr(-5)},
		{Age: floatPtr(math.NaN()), SibSp: math.NaN(), Parch: math.NaN(), Fare: floatPtr(math.NaN())},
	}

	for _, in := range inputs {
		result := Score(in)
		assert.GreaterOrEqual(t, result.Probability, 0.0)
		assert.LessOrEqual(t, result.Probability, 1.0)
		assert.False(t, math.IsNaN(result.Probability))
	}
}

func TestScoreIsPure(t *testing.T) {
	in := Input{Pclass: 2, Sex: "female", Age: floatPtr(40), SibSp: 1, Fare: floatPtr(25)}

	first := Score(in)
	second := Score(in)

	assert.Equal(t, first, second)
}

func TestScoreSexDelta(t *testing.T) {
	// Switching male -> female swings the score by exactly +0.60:
	// the -0.25 branch is replaced by the +0.35 branch.
	male := Score(Input{Pclass: 2, Sex: "male", Age: floatPtr(30), Fare: floatPtr(15)})
	female := Score(Input{Pclass: 2, Sex: "female", Age: floatPtr(30), Fare: floatPtr(15)})

	assert.InDelta(t, 0.60, female.Probability-male.Probability, 1e-9)
}

func TestScoreClassDelta(t *testing.T) {
	third := Score(Input{Pclass: 3, Sex: "male", Age: floatPtr(30), Fare: floatPtr(15)})
	first := Score(Input{Pclass: 1, Sex: "male", Age: floatPtr(30), Fare: floatPtr(15)})

	assert.InDelta(t, 0.35, first.Probability-third.Probability, 1e-9)
}

func TestScoreMissingAgeAndFareUseDefaults(t *testing.T) {
	// Absent age substitutes 30 and absent fare substitutes 15, both of
	// which sit in the neutral bands, so the result matches the explicit
	// neutral input.
	implicit := Score(Input{Pclass: 3, Sex: "male"})
	explicit := Score(Input{Pclass: 3, Sex: "male", Age: floatPtr(30), Fare: floatPtr(15)})

	assert.Equal(t, explicit, implicit)
}

func TestScoreNaNSkipsRule(t *testing.T) {
	// A malformed numeric field compares false against every threshold,
	// so its rule contributes nothing.
	nan := Score(Input{Pclass: 1, Sex: "female", Age: floatPtr(math.NaN()), Fare: floatPtr(math.NaN())})
	neutral := Score(Input{Pclass: 1, Sex: "female", Age: floatPtr(30), Fare: floatPtr(15)})

	assert.Equal(t, neutral.Probability, nan.Probability)
}

func TestScoreFamilySize(t *testing.T) {
	tests := []struct {
		name     string
		sibsp    float64
		parch    float64
		expected float64
	}{
		{"alone", 0, 0, 0.10},
		{"small family", 1, 1, 0.15},
		{"large family", 3, 1, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(Input{
				Pclass: 3,
				Sex:    "male",
				Age:    floatPtr(30),
				SibSp:  tt.sibsp,
				Parch:  tt.parch,
				Fare:   floatPtr(15),
			})
			assert.InDelta(t, tt.expected, result.Probability, 1e-9)
		})
	}
}

func TestScoreEmbarkedDoesNotAffectScore(t *testing.T) {
	base := Score(Input{Pclass: 3, Sex: "male"})
	for _, port := range []string{"S", "C", "Q", ""} {
		result := Score(Input{Pclass: 3, Sex: "male", Embarked: port})
		assert.Equal(t, base, result)
	}
}
