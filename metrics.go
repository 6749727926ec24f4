package main

import (
	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type instruments struct {
	loadingCount   metrics.Counter
	loadingLatency metrics.Histogram
	loadedWeight   metrics.Counter

	stowageCount    metrics.Counter
	stowageLatency  metrics.Histogram
	stowageRejected metrics.Counter

	dockingCount   metrics.Counter
	dockingLatency metrics.Histogram
	docked         metrics.Gauge

	endpointDuration metrics.Histogram
}

// newInstruments registers every metric the services report on reg.
func newInstruments(cfg MetricsConfig, reg stdprometheus.Registerer) *instruments {
	counter := func(name, help string, labels ...string) metrics.Counter {
		cv := stdprometheus.NewCounterVec(stdprometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      name,
			Help:      help,
		}, labels)
		reg.MustRegister(cv)
		return kitprometheus.NewCounter(cv)
	}
	summary := func(name, help string, labels ...string) metrics.Histogram {
		sv := stdprometheus.NewSummaryVec(stdprometheus.SummaryOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      name,
			Help:      help,
		}, labels)
		reg.MustRegister(sv)
		return kitprometheus.NewSummary(sv)
	}
	gauge := func(name, help string) metrics.Gauge {
		gv := stdprometheus.NewGaugeVec(stdprometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      name,
			Help:      help,
		}, []string{})
		reg.MustRegister(gv)
		return kitprometheus.NewGauge(gv)
	}

	return &instruments{
		loadingCount:   counter("loading_request_count", "Number of loading requests received.", "method"),
		loadingLatency: summary("loading_request_latency_seconds", "Total duration of loading requests in seconds.", "method"),
		loadedWeight:   counter("loaded_cargo_weight_total", "Total weight of cargo loaded into containers."),

		stowageCount:    counter("stowage_request_count", "Number of stowage requests received.", "method"),
		stowageLatency:  summary("stowage_request_latency_seconds", "Total duration of stowage requests in seconds.", "method"),
		stowageRejected: counter("stowage_rejected_total", "Number of stowage requests that failed."),

		dockingCount:   counter("docking_request_count", "Number of docking requests received.", "method"),
		dockingLatency: summary("docking_request_latency_seconds", "Total duration of docking requests in seconds.", "method"),
		docked:         gauge("docked_ships", "Number of ships currently docked."),

		endpointDuration: summary("endpoint_duration_seconds", "Endpoint call duration in seconds.", "method", "success"),
	}
}
