package model

// UsageCounters is the singleton instrumentation record. Each field only
// ever grows; this service writes it and never reads it back.
type UsageCounters struct {
	Executions    int64            `json:"executions"`
	FeatureClicks map[string]int64 `json:"feature_clicks"`
}

// CounterEvent is one queued increment, consumed by the counter worker.
// Feature is empty for plain execution counts.
type CounterEvent struct {
	Feature string `json:"feature,omitempty"`
	Delta   int64  `json:"delta"`
}
