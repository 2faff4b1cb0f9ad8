package models

// ModelStats is the read-only statistics snapshot for the loaded manifest.
// Accuracy is the heuristic's agreement rate against the historical labels
// as a percentage; it is omitted entirely when the dataset is empty, since
// the agreement rate of zero records is undefined.
type ModelStats struct {
	Accuracy     *float64 `json:"accuracy,omitempty"`
	TotalRecords int      `json:"totalRecords"`
	Survived     int      `json:"survived"`
	Deaths       int      `json:"deaths"`
}

func NewModelStats(accuracy *float64, total, survived, deaths int) ModelStats {
	return ModelStats{
		Accuracy:     accuracy,
		TotalRecords: total,
		Survived:     survived,
		Deaths:       deaths,
	}
}
