package models

// ConnectorStats is the per-connector slice of a reconciliation aggregate.
type ConnectorStats struct {
	Connector            string  `json:"connector"`
	TotalCount           int     `json:"total_count"`
	MatchedCount         int     `json:"matched_count"`
	ReconciliationRate   float64 `json:"reconciliation_rate"`
	MatchedVolumeMinor   int64   `json:"matched_volume_minor"`
	UnmatchedVolumeMinor int64   `json:"unmatched_volume_minor"`
}

// Trend compares the current period against the immediately preceding period
// of equal length. Deltas are plain differences, never extrapolated.
type Trend struct {
	RateChangePoints  float64 `json:"rate_change_points"`
	VolumeChangeMinor int64   `json:"volume_change_minor"`
	CountChange       int     `json:"count_change"`
}

// ReconciliationStats is a pure aggregate over a collection of reconciliation
// items. It has no independent identity: it is recomputed on demand and never
// persisted.
type ReconciliationStats struct {
	TotalCount     int `json:"total_count"`
	MatchedCount   int `json:"matched_count"`
	UnmatchedCount int `json:"unmatched_count"`
	PendingCount   int `json:"pending_count"`
	DisputedCount  int `json:"disputed_count"`

	ReconciliationRate   float64 `json:"reconciliation_rate"`
	MatchedVolumeMinor   int64   `json:"matched_volume_minor"`
	UnmatchedVolumeMinor int64   `json:"unmatched_volume_minor"`

	TotalDiscrepancies    int     `json:"total_discrepancies"`
	DiscrepancyRate       float64 `json:"discrepancy_rate"`
	TotalDiscrepancyMinor int64   `json:"total_discrepancy_minor"`
	AvgDiscrepancyMinor   float64 `json:"avg_discrepancy_minor"`

	// Automation metrics: matched items need no human touch, unmatched and
	// disputed ones land in a review queue.
	AutoMatchedCount int     `json:"auto_matched_count"`
	NeedsReviewCount int     `json:"needs_review_count"`
	AutoMatchRate    float64 `json:"auto_match_rate"`

	Connectors     []ConnectorStats `json:"connectors"`
	BestConnector  string           `json:"best_connector,omitempty"`
	WorstConnector string           `json:"worst_connector,omitempty"`

	Trend Trend `json:"trend"`
}
