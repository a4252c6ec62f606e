package measure

import "time"

// Measure collects one Metric per stage.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the executions of one stage.
type Metric interface {
	// AddDuration records one execution of the stage.
	AddDuration(elapsed time.Duration)
	// AddHandover records one line received from the parent stage.
	AddHandover(parentStageName string)
	AVGDuration() time.Duration
	Count() int64
	// Handovers returns the number of lines received from each parent stage.
	Handovers() map[string]int64
	SetTotalDuration(total time.Duration)
	GetTotalDuration() time.Duration
}
