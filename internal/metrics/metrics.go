// Package metrics holds Prometheus instruments for configuration
// resolution.  All collectors are registered with the global registry, so
// mounting promhttp.Handler() is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ConfigResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "config_resolutions_total",
			Help: "Configuration resolutions by outcome (ok, error).",
		}, []string{"outcome"})

	ConfigResolutionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "config_resolution_errors_total",
			Help: "Configuration resolution errors by kind.",
		}, []string{"kind"})

	LogsDirCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "config_logs_dir_created_total",
			Help: "Number of times the logs directory had to be created.",
		})

	CapabilityEnabled = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "config_capability_enabled",
			Help: "1 when an optional integration has enough configuration to run.",
		}, []string{"integration"})
)

func init() {
	prometheus.MustRegister(
		ConfigResolutionsTotal,
		ConfigResolutionErrorsTotal,
		LogsDirCreatedTotal,
		CapabilityEnabled,
	)
}
