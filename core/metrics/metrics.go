package metrics

import "time"

// GenerationEvent captures the state of a search after one generation.
type GenerationEvent struct {
	RunID      string
	Instance   string
	Generation int
	BestValue  float64
	MeanValue  float64
	StdDev     float64
	Time       time.Time
}

// MetricsSink records generation progress for observability purposes.
type MetricsSink interface {
	RecordGeneration(ev GenerationEvent) error
}

// RunEvent summarises a finished solver run.
type RunEvent struct {
	RunID       string
	Instance    string
	Solver      string
	Value       float64
	Generations int
	Blocks      int
	Periods     int
	Evaluations int
	Complete    bool
	Duration    time.Duration
	Time        time.Time
}

// RunRecorder is implemented by sinks able to record run summaries.
type RunRecorder interface {
	RecordRun(ev RunEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordGeneration(GenerationEvent) error { return nil }
func (NopSink) RecordRun(RunEvent) error               { return nil }
