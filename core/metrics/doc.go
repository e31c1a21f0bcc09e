package metrics

// Package metrics defines interfaces and sink plumbing for solver
// observability. Sinks like PromSink and InfluxSink record generation
// progress and run summaries and can be combined with NewMultiSink. The
// factory helpers return a MultiSink automatically when multiple sinks are
// configured.
