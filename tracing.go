package main

import (
	stdlog "log"

	"github.com/go-kit/kit/log"
	stdopentracing "github.com/opentracing/opentracing-go"
	stdzipkin "github.com/openzipkin/zipkin-go"
	zipkinlog "github.com/openzipkin/zipkin-go/reporter/log"
)

// newTracers returns the opentracing tracer, and a zipkin tracer when tracing
// is enabled. Finished spans are written to logger. The returned func flushes
// the zipkin reporter.
func newTracers(cfg TracingConfig, logger log.Logger) (stdopentracing.Tracer, *stdzipkin.Tracer, func() error, error) {
	otTracer := stdopentracing.GlobalTracer() // no-op unless one was registered
	if !cfg.Enabled {
		return otTracer, nil, func() error { return nil }, nil
	}

	reporter := zipkinlog.NewReporter(stdlog.New(log.NewStdlibAdapter(logger), "", 0))
	endpoint, err := stdzipkin.NewEndpoint(cfg.ServiceName, cfg.HostPort)
	if err != nil {
		reporter.Close()
		return nil, nil, nil, err
	}
	zipkinTracer, err := stdzipkin.NewTracer(reporter, stdzipkin.WithLocalEndpoint(endpoint))
	if err != nil {
		reporter.Close()
		return nil, nil, nil, err
	}
	return otTracer, zipkinTracer, reporter.Close, nil
}
