package models

import "time"

// LoadStatusModel reports the state of the one-shot dataset load.
type LoadStatusModel struct {
	State        string `json:"state"`
	Records      int    `json:"records"`
	LastUpdated  int64  `json:"lastUpdated,omitempty"`
	ReadableTime string `json:"readableTime,omitempty"`
}

// NewLoadStatus creates a LoadStatusModel for the given state. A zero
// lastUpdated (no successful load yet) leaves the timestamps out.
func NewLoadStatus(state string, records int, lastUpdated time.Time) LoadStatusModel {
	status := LoadStatusModel{
		State:   state,
		Records: records,
	}

	if !lastUpdated.IsZero() {
		status.LastUpdated = lastUpdated.UnixNano() / int64(time.Millisecond)
		status.ReadableTime = lastUpdated.Format(time.RFC3339)
	}

	return status
}
