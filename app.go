package main

import (
	"fmt"
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"

	"github.com/Qalifah/harbor/container"
	"github.com/Qalifah/harbor/docking"
	"github.com/Qalifah/harbor/endpoints"
	"github.com/Qalifah/harbor/harbor"
	"github.com/Qalifah/harbor/inmem"
	"github.com/Qalifah/harbor/loading"
	"github.com/Qalifah/harbor/location"
	"github.com/Qalifah/harbor/manifest"
	"github.com/Qalifah/harbor/report"
	"github.com/Qalifah/harbor/stowage"
)

// app is one harbor with its services wired up, writing reports to out.
type app struct {
	harbor *harbor.Harbor
	out    io.Writer
	logger log.Logger
	close  func() error

	loading loading.Service
	stowage stowage.Service
	docking docking.Service
}

func newApp(cfg *Config, logger log.Logger, reg stdprometheus.Registerer, out io.Writer) (*app, error) {
	code, err := location.ParseUNLcode(cfg.Harbor.Location)
	if err != nil {
		return nil, err
	}
	loc, err := inmem.NewLocationRepository().Find(code)
	if err != nil {
		return nil, fmt.Errorf("harbor location %s: %w", code, err)
	}

	otTracer, zipkinTracer, closeTracer, err := newTracers(cfg.Tracing, logger)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	var (
		containers = inmem.NewContainerRepository()
		ships      = inmem.NewShipRepository()
		events     = inmem.NewHandlingEventRepository()
		h          = harbor.New(loc)
		sink       = report.NewWriter(out)
		m          = newInstruments(cfg.Metrics, reg)
	)

	opts := endpoints.Options{
		RateLimit: cfg.Endpoint.RateLimit,
		Burst:     cfg.Endpoint.Burst,
		Breaker: gobreaker.Settings{
			MaxRequests: cfg.Endpoint.BreakerMaxRequests,
			Interval:    cfg.Endpoint.BreakerInterval,
			Timeout:     cfg.Endpoint.BreakerTimeout,
		},
		OTTracer:     otTracer,
		ZipkinTracer: zipkinTracer,
		Duration:     m.endpointDuration,
	}

	logger = log.With(logger, "harbor", cfg.Harbor.Name, "location", loc.UNLcode)
	debug := level.Debug(logger)

	var ls loading.Service
	ls = loading.NewService(container.NewRegistry(), containers, events, sink)
	ls = loading.NewLoggingService(log.With(debug, "component", "loading"), ls)
	ls = loading.NewInstrumentingService(m.loadingCount, m.loadedWeight, m.loadingLatency, ls)

	var ss stowage.Service
	ss = stowage.NewService(ships, containers, events)
	ss = stowage.NewLoggingService(log.With(debug, "component", "stowage"), ss)
	ss = stowage.NewInstrumentingService(m.stowageCount, m.stowageRejected, m.stowageLatency, ss)

	var ds docking.Service
	ds = docking.NewService(h, ships, sink)
	ds = docking.NewLoggingService(log.With(debug, "component", "docking"), ds)
	ds = docking.NewInstrumentingService(m.dockingCount, m.dockingLatency, m.docked, ds)

	level.Info(logger).Log("msg", "harbor ready", "tracing", cfg.Tracing.Enabled)

	return &app{
		harbor:  h,
		out:     out,
		logger:  logger,
		close:   closeTracer,
		loading: loading.NewSet(ls, opts),
		stowage: stowage.NewSet(ss, opts),
		docking: docking.NewSet(ds, opts),
	}, nil
}

func (a *app) services() manifest.Services {
	return manifest.Services{
		Docking: a.docking,
		Loading: a.loading,
		Stowage: a.stowage,
	}
}
