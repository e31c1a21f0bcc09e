package metrics

import "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusAddr, when set, exposes /metrics on this listen address.
	PrometheusAddr string `json:"prometheus_addr"`
}
