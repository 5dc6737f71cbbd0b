// Package metrics holds Prometheus instruments used across the service.
// All collectors are registered with the global registry, so importing
// this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PagesClassifiedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_pages_classified_total",
			Help: "Rendered pages by classified page kind.",
		}, []string{"kind"})

	CustomVarsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_custom_vars_total",
			Help: "Custom variables delivered, by sink.",
		}, []string{"sink"})

	HookErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_hook_errors_total",
			Help: "Hook callbacks that returned an error, by hook name.",
		}, []string{"hook"})
)

func init() {
	prometheus.MustRegister(
		PagesClassifiedTotal,
		CustomVarsTotal,
		HookErrorsTotal,
	)
}
