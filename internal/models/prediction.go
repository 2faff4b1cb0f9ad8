package models

import "math"

// PredictionInput echoes the hypothetical passenger a prediction was
// requested for. Numeric fields are omitted when they were absent or
// unparsable; JSON has no NaN, so a malformed value is echoed as absent.
type PredictionInput struct {
	Pclass   int      `json:"pclass"`
	Sex      string   `json:"sex"`
	Age      *float64 `json:"age,omitempty"`
	SibSp    *float64 `json:"sibsp,omitempty"`
	Parch    *float64 `json:"parch,omitempty"`
	Fare     *float64 `json:"fare,omitempty"`
	Embarked string   `json:"embarked,omitempty"`
}

// PredictionEntry is the entry payload of the predict endpoint: the echoed
// input, the clamped probability, and the thresholded verdict.
type PredictionEntry struct {
	Input       PredictionInput `json:"input"`
	Probability float64         `json:"probability"`
	Survived    bool            `json:"survived"`
}

func NewPredictionEntry(input PredictionInput, probability float64, survived bool) PredictionEntry {
	return PredictionEntry{
		Input:       input,
		Probability: probability,
		Survived:    survived,
	}
}

// JSONNumber drops NaN values so the echo stays marshalable.
func JSONNumber(f *float64) *float64 {
	if f == nil || math.IsNaN(*f) {
		return nil
	}
	return f
}
