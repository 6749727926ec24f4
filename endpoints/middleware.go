// Package endpoints holds the middleware stack every service endpoint is
// wrapped in.
package endpoints

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/go-kit/kit/circuitbreaker"
	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/ratelimit"
	"github.com/go-kit/kit/tracing/opentracing"
	"github.com/go-kit/kit/tracing/zipkin"

	stdopentracing "github.com/opentracing/opentracing-go"
	stdzipkin "github.com/openzipkin/zipkin-go"
	"github.com/sony/gobreaker"
)

// Failer is implemented by responses that carry a business logic error, so
// middlewares can tell a failed call from a successful one.
type Failer interface {
	Failed() error
}

// Options configures the middleware stack. The zero value gives an unlimited
// rate, a default circuit breaker, no tracing and no metrics.
type Options struct {
	// RateLimit is the number of calls per second allowed on each endpoint;
	// zero or less means unlimited.
	RateLimit float64
	Burst     int

	// Breaker is copied for every endpoint, with Name set to the endpoint name.
	Breaker gobreaker.Settings

	OTTracer     stdopentracing.Tracer
	ZipkinTracer *stdzipkin.Tracer

	// Duration observes call latency in seconds, labelled by method and success.
	Duration metrics.Histogram
}

// Middleware returns the full stack for the endpoint called name.
func Middleware(name string, o Options) endpoint.Middleware {
	limit := rate.Inf
	if o.RateLimit > 0 {
		limit = rate.Limit(o.RateLimit)
	}
	burst := o.Burst
	if burst <= 0 {
		burst = 1
	}

	settings := o.Breaker
	settings.Name = name

	otTracer := o.OTTracer
	if otTracer == nil {
		otTracer = stdopentracing.NoopTracer{}
	}

	duration := o.Duration
	if duration == nil {
		duration = discard.NewHistogram()
	}

	mw := []endpoint.Middleware{
		ratelimit.NewErroringLimiter(rate.NewLimiter(limit, burst)),
		circuitbreaker.Gobreaker(gobreaker.NewCircuitBreaker(settings)),
		opentracing.TraceServer(otTracer, name),
	}
	if o.ZipkinTracer != nil {
		mw = append(mw, zipkin.TraceEndpoint(o.ZipkinTracer, name))
	}

	return endpoint.Chain(InstrumentingMiddleware(duration.With("method", name)), mw...)
}

// InstrumentingMiddleware records the duration of each call on duration,
// labelled with whether the call succeeded.
func InstrumentingMiddleware(duration metrics.Histogram) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				duration.With("success", fmt.Sprint(succeeded(response, err))).Observe(time.Since(begin).Seconds())
			}(time.Now())
			return next(ctx, request)
		}
	}
}

func succeeded(response interface{}, err error) bool {
	if err != nil {
		return false
	}
	if f, ok := response.(Failer); ok && f.Failed() != nil {
		return false
	}
	return true
}
