package docking

import (
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/Qalifah/harbor/ship"
)

type instrumentingService struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	docked         metrics.Gauge
	Service
}

// NewInstrumentingService returns an instance of an instrumenting Service.
// docked tracks the number of ships in the harbor.
func NewInstrumentingService(counter metrics.Counter, latency metrics.Histogram, docked metrics.Gauge, s Service) Service {
	return &instrumentingService{
		requestCount:   counter,
		requestLatency: latency,
		docked:         docked,
		Service:        s,
	}
}

func (s *instrumentingService) DockShip(id ship.ID) (err error) {
	defer func(begin time.Time) {
		s.requestCount.With("method", "dock").Add(1)
		s.requestLatency.With("method", "dock").Observe(time.Since(begin).Seconds())
		if err == nil {
			s.docked.Add(1)
		}
	}(time.Now())
	return s.Service.DockShip(id)
}

func (s *instrumentingService) UndockShip(id ship.ID) (err error) {
	defer func(begin time.Time) {
		s.requestCount.With("method", "undock").Add(1)
		s.requestLatency.With("method", "undock").Observe(time.Since(begin).Seconds())
		if err == nil {
			s.docked.Add(-1)
		}
	}(time.Now())
	return s.Service.UndockShip(id)
}
